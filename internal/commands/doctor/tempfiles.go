package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// TempFileCheck finds temp files left behind by interrupted atomic writes.
// Fix deletes them.
type TempFileCheck struct {
	dirs []string
}

// NewTempFileCheck creates a check over dirs. Missing dirs are skipped.
func NewTempFileCheck(dirs []string) *TempFileCheck {
	return &TempFileCheck{dirs: dirs}
}

func (c *TempFileCheck) Name() string {
	return "Leftover Temp Files"
}

func (c *TempFileCheck) Run(_ context.Context) Result {
	return c.check(false)
}

func (c *TempFileCheck) Fix(_ context.Context) Result {
	return c.check(true)
}

func (c *TempFileCheck) check(fix bool) Result {
	result := Result{Name: c.Name()}

	leftovers, failures := c.find()
	result.Items = append(result.Items, failures...)

	if len(leftovers) == 0 && len(failures) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "No leftovers",
			Status: StatusPass,
		})
		return result
	}

	for _, path := range leftovers {
		result.Items = append(result.Items, leftoverItem(path, fix))
	}

	return result
}

// find globs every dir for temp files. Unreadable dirs become failed items.
func (c *TempFileCheck) find() (leftovers []string, failures []CheckItem) {
	for _, dir := range c.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(dir, "*.tmp"), doublestar.WithFilesOnly())
		if err != nil {
			failures = append(failures, CheckItem{
				Label:  dir,
				Status: StatusFail,
				Detail: err.Error(),
			})
			continue
		}
		leftovers = append(leftovers, matches...)
	}
	return leftovers, failures
}

func leftoverItem(path string, fix bool) CheckItem {
	name := filepath.Base(path)

	if !fix {
		return CheckItem{
			Label:   name,
			Status:  StatusWarn,
			Detail:  "temp file from an interrupted write",
			Fixable: true,
		}
	}

	if err := os.Remove(path); err != nil {
		return CheckItem{
			Label:  name,
			Status: StatusFail,
			Detail: fmt.Sprintf("failed to delete: %v", err),
		}
	}

	return CheckItem{
		Label:  name,
		Status: StatusPass,
		Detail: "deleted",
	}
}
