// Package download saves exported documents to the local file system, the
// terminal equivalent of a browser download.
package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/smart-events/board/pkg/randid"
)

// FileSaver writes documents into Dir.
type FileSaver struct {
	Dir string
	Log zerolog.Logger
}

// NewFileSaver creates a FileSaver writing into dir.
func NewFileSaver(dir string, log zerolog.Logger) *FileSaver {
	return &FileSaver{Dir: dir, Log: log}
}

// Save writes payload to Dir/filename. The file appears complete or not at
// all; an existing file with the same name is replaced.
func (s *FileSaver) Save(ctx context.Context, payload []byte, filename, mediaType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if filename == "" || filepath.Base(filename) != filename {
		return fmt.Errorf("invalid file name %q", filename)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	target := s.Path(filename)
	tmp := randid.TempName(target)

	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.Log.Debug().
		Str("path", target).
		Str("media_type", mediaType).
		Int("bytes", len(payload)).
		Msg("document saved")

	return nil
}

// Path returns where Save puts filename.
func (s *FileSaver) Path(filename string) string {
	return filepath.Join(s.Dir, filename)
}
