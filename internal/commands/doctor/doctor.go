// Package doctor runs health checks over the board's configuration, storage
// and data directories, and repairs what can be repaired.
package doctor

import (
	"context"
	"fmt"
)

// Status is the outcome of a single check item.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	if s < StatusPass || s > StatusFail {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(s.String()), nil
}

// CheckItem is one line of a check result. Fixable items are repaired when
// the check runs in fix mode.
type CheckItem struct {
	Label   string `json:"label"`
	Status  Status `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Fixable bool   `json:"fixable,omitempty"`
}

// Result is the outcome of one check.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

// Check inspects one aspect of the setup without changing anything.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// Fixer is a Check that can also repair the problems it reports. Fix returns
// the result after repairing, so a fixed item reports StatusPass.
type Fixer interface {
	Check
	Fix(ctx context.Context) Result
}

// Options controls how checks run.
type Options struct {
	// Fix runs Fix instead of Run on checks that implement Fixer.
	Fix bool
}

// Report holds the results of a doctor run, in check order.
type Report []Result

// RunAll runs every check and collects the results.
func RunAll(ctx context.Context, checks []Check, opts Options) Report {
	report := make(Report, 0, len(checks))
	for _, check := range checks {
		if fixer, ok := check.(Fixer); ok && opts.Fix {
			report = append(report, fixer.Fix(ctx))
			continue
		}
		report = append(report, check.Run(ctx))
	}
	return report
}

// Summary counts passed, warned and failed items.
func (r Report) Summary() (passed, warned, failed int) {
	for _, res := range r {
		for _, item := range res.Items {
			switch item.Status {
			case StatusPass:
				passed++
			case StatusWarn:
				warned++
			case StatusFail:
				failed++
			}
		}
	}
	return
}

// Healthy reports whether no item failed. Warnings do not count.
func (r Report) Healthy() bool {
	_, _, failed := r.Summary()
	return failed == 0
}

// Fixable counts unresolved items that a fix run would repair.
func (r Report) Fixable() int {
	count := 0
	for _, res := range r {
		for _, item := range res.Items {
			if item.Fixable && item.Status != StatusPass {
				count++
			}
		}
	}
	return count
}
