package board

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/smart-events/board/internal/core/comment"
)

// Downloader hands a finished document to the user.
type Downloader interface {
	Save(ctx context.Context, payload []byte, filename, mediaType string) error
}

// Namer returns the file name for a backup of count comments taken at t.
type Namer func(t time.Time, count int) (string, error)

// Document is a standalone backup of the board. It is never read back into
// the live store.
type Document struct {
	Comments      []comment.Record `json:"comments"`
	ExportDate    string           `json:"exportDate"`
	TotalComments int              `json:"totalComments"`
	Note          string           `json:"note,omitempty"`
}

// Export describes a saved backup.
type Export struct {
	Document  Document
	Filename  string
	MediaType string
	Size      int
}

// Exporter builds backup documents and passes them to a Downloader.
type Exporter struct {
	downloader Downloader
	name       Namer
	note       string
	now        func() time.Time
	log        zerolog.Logger
}

// NewExporter creates an Exporter. now defaults to time.Now.
func NewExporter(d Downloader, name Namer, note string, now func() time.Time, log zerolog.Logger) *Exporter {
	if now == nil {
		now = time.Now
	}
	return &Exporter{downloader: d, name: name, note: note, now: now, log: log}
}

// Build returns the backup document for list without saving it.
func (e *Exporter) Build(list []comment.Comment) Document {
	return Document{
		Comments:      comment.Records(list),
		ExportDate:    comment.FormatTimestamp(e.now()),
		TotalComments: len(list),
		Note:          e.note,
	}
}

// Export builds the backup document for list and saves it. Every failure is
// a *comment.ExportError.
func (e *Exporter) Export(ctx context.Context, list []comment.Comment) (Export, error) {
	now := e.now()
	doc := e.Build(list)

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Export{}, &comment.ExportError{Op: "encode", Err: err}
	}

	filename, err := e.name(now, len(list))
	if err != nil {
		return Export{}, &comment.ExportError{Op: "name", Err: err}
	}

	mediaType := mimetype.Detect(payload).String()

	if err := e.downloader.Save(ctx, payload, filename, mediaType); err != nil {
		return Export{}, &comment.ExportError{Op: "save", Err: err}
	}

	e.log.Info().
		Str("file", filename).
		Str("media_type", mediaType).
		Int("count", doc.TotalComments).
		Msg("comments exported")

	return Export{
		Document:  doc,
		Filename:  filename,
		MediaType: mediaType,
		Size:      len(payload),
	}, nil
}

// Backup summarizes a backup document found on disk.
type Backup struct {
	Path          string
	ExportDate    string
	TotalComments int
	Err           error // set when the file is not a readable backup
}

// ListBackups finds backup documents in dir matching the glob pattern, newest
// file name first. Documents are only inspected, never imported.
func ListBackups(dir, pattern string) ([]Backup, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	slices.SortFunc(matches, func(a, b string) int {
		return strings.Compare(b, a)
	})

	backups := make([]Backup, 0, len(matches))
	for _, path := range matches {
		backups = append(backups, readBackup(path))
	}

	return backups, nil
}

func readBackup(path string) Backup {
	b := Backup{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		b.Err = err
		return b
	}

	var header struct {
		ExportDate    string `json:"exportDate"`
		TotalComments *int   `json:"totalComments"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		b.Err = fmt.Errorf("not a backup document: %w", err)
		return b
	}
	if header.TotalComments == nil {
		b.Err = fmt.Errorf("not a backup document: missing totalComments")
		return b
	}

	b.ExportDate = header.ExportDate
	b.TotalComments = *header.TotalComments
	return b
}
