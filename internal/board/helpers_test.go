package board

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smart-events/board/internal/render"
	"github.com/smart-events/board/internal/store/jsonfile"
)

var t0 = time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock(t time.Time) *clock { return &clock{now: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingDownloader keeps every saved document in memory.
type recordingDownloader struct {
	mu    sync.Mutex
	saves []savedDoc
	err   error
}

type savedDoc struct {
	payload   []byte
	filename  string
	mediaType string
}

func (d *recordingDownloader) Save(_ context.Context, payload []byte, filename, mediaType string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.saves = append(d.saves, savedDoc{payload: payload, filename: filename, mediaType: mediaType})
	return nil
}

func dateNamer(t time.Time, _ int) (string, error) {
	return "comments-backup-" + t.UTC().Format(time.DateOnly) + ".json", nil
}

type fixture struct {
	board      *Board
	storage    *jsonfile.KVStore
	clock      *clock
	downloader *recordingDownloader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		storage:    jsonfile.NewKVStore(filepath.Join(t.TempDir(), "comments.json")),
		clock:      newClock(t0),
		downloader: &recordingDownloader{},
	}
	f.board = f.open(t)
	return f
}

// open creates a fresh Board over the fixture's storage, as a page reload does.
func (f *fixture) open(t *testing.T) *Board {
	t.Helper()
	b := New(Options{
		Storage:     f.storage,
		Downloader:  f.downloader,
		Namer:       dateNamer,
		Note:        "test backup",
		Dates:       render.DateFormatter{Locale: "en", Location: time.UTC},
		Now:         f.clock.Now,
		SettleDelay: time.Hour,
	}, zerolog.Nop())
	t.Cleanup(b.Close)
	b.Load(context.Background())
	return b
}
