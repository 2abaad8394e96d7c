package board

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-events/board/internal/core/comment"
)

func TestExporter_Export(t *testing.T) {
	d := &recordingDownloader{}
	e := NewExporter(d, dateNamer, "test backup", newClock(t0).Now, zerolog.Nop())

	list := []comment.Comment{
		{ID: 2, Author: "Ana", Message: "Hola", CreatedAt: t0, IsNew: true},
		{ID: 1, Author: "Luis", Message: "Buenas", CreatedAt: t0.Add(-time.Hour)},
	}

	exp, err := e.Export(context.Background(), list)
	require.NoError(t, err)

	require.Len(t, d.saves, 1)
	saved := d.saves[0]
	assert.Equal(t, "comments-backup-2025-09-08.json", saved.filename)
	assert.Equal(t, "comments-backup-2025-09-08.json", exp.Filename)
	assert.Equal(t, "application/json", saved.mediaType)
	assert.Equal(t, len(saved.payload), exp.Size)

	var doc Document
	require.NoError(t, json.Unmarshal(saved.payload, &doc))
	assert.Equal(t, 2, doc.TotalComments)
	assert.Equal(t, "2025-09-08T12:00:00.000Z", doc.ExportDate)
	assert.Equal(t, "test backup", doc.Note)
	require.Len(t, doc.Comments, 2)
	assert.Equal(t, comment.Record{
		ID: 2, Name: "Ana", Message: "Hola", Timestamp: "2025-09-08T12:00:00.000Z", IsNew: false,
	}, doc.Comments[0])
}

func TestExporter_EmptyListIsAnArray(t *testing.T) {
	d := &recordingDownloader{}
	e := NewExporter(d, dateNamer, "", newClock(t0).Now, zerolog.Nop())

	_, err := e.Export(context.Background(), nil)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(d.saves[0].payload, &raw))
	assert.Equal(t, []any{}, raw["comments"])
	assert.Equal(t, float64(0), raw["totalComments"])
	assert.NotContains(t, raw, "note")
}

func TestExporter_Failures(t *testing.T) {
	t.Run("save fails", func(t *testing.T) {
		d := &recordingDownloader{err: errors.New("disk full")}
		e := NewExporter(d, dateNamer, "", newClock(t0).Now, zerolog.Nop())

		_, err := e.Export(context.Background(), nil)

		var eerr *comment.ExportError
		require.ErrorAs(t, err, &eerr)
		assert.Equal(t, "save", eerr.Op)
	})

	t.Run("name fails", func(t *testing.T) {
		d := &recordingDownloader{}
		badName := func(time.Time, int) (string, error) { return "", errors.New("bad template") }
		e := NewExporter(d, badName, "", newClock(t0).Now, zerolog.Nop())

		_, err := e.Export(context.Background(), nil)

		var eerr *comment.ExportError
		require.ErrorAs(t, err, &eerr)
		assert.Equal(t, "name", eerr.Op)
		assert.Empty(t, d.saves)
	})
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	write("comments-backup-2025-09-07.json", `{"comments":[],"exportDate":"2025-09-07T10:00:00.000Z","totalComments":0}`)
	write("comments-backup-2025-09-08.json", `{"comments":[{}],"exportDate":"2025-09-08T12:00:00.000Z","totalComments":1}`)
	write("comments-backup-broken.json", `not json`)
	write("other.json", `{}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "comments-backup-dir.json"), 0o755))

	backups, err := ListBackups(dir, "comments-backup-*.json")
	require.NoError(t, err)
	require.Len(t, backups, 3)

	assert.Equal(t, filepath.Join(dir, "comments-backup-broken.json"), backups[0].Path)
	assert.Error(t, backups[0].Err)

	assert.Equal(t, 1, backups[1].TotalComments)
	assert.Equal(t, "2025-09-08T12:00:00.000Z", backups[1].ExportDate)
	assert.NoError(t, backups[1].Err)

	assert.Equal(t, 0, backups[2].TotalComments)
	assert.NoError(t, backups[2].Err)
}

func TestListBackups_NoMatches(t *testing.T) {
	backups, err := ListBackups(t.TempDir(), "comments-backup-*.json")
	require.NoError(t, err)
	assert.Empty(t, backups)
}
