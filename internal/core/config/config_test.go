package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-events/board/internal/core/comment"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load("", dataDir)
	require.NoError(t, err)

	assert.Equal(t, DriverJSONFile, cfg.Storage.Driver)
	assert.Equal(t, comment.DefaultKey, cfg.Storage.Key)
	assert.Equal(t, LocaleES, cfg.Display.Locale)
	assert.Equal(t, filepath.Join(dataDir, "comments.json"), cfg.StoragePath())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DriverJSONFile, cfg.Storage.Driver)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
storage:
  driver: badger
  key: my-board
display:
  locale: en
  timezone: Europe/Madrid
export:
  dir: /tmp/backups
`)
	dataDir := t.TempDir()

	cfg, err := Load(path, dataDir)
	require.NoError(t, err)

	assert.Equal(t, DriverBadger, cfg.Storage.Driver)
	assert.Equal(t, "my-board", cfg.Storage.Key)
	assert.Equal(t, LocaleEN, cfg.Display.Locale)
	assert.Equal(t, "Europe/Madrid", cfg.Location().String())
	assert.Equal(t, "/tmp/backups", cfg.Export.Dir)
	assert.Equal(t, filepath.Join(dataDir, "badger"), cfg.StoragePath())
	// untouched sections keep their defaults
	assert.Equal(t, "comments-backup-*.json", cfg.Export.Pattern)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOARD_STORAGE_DRIVER", "redis")
	t.Setenv("BOARD_STORAGE_REDIS_ADDR", "cache:6380")
	t.Setenv("BOARD_DISPLAY_LOCALE", "en")

	path := writeConfig(t, "storage:\n  driver: badger\n")

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "cache:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, LocaleEN, cfg.Display.Locale)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "storage: [unclosed"), t.TempDir())
	assert.ErrorContains(t, err, "parse config file")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Driver = "sqlite"
	cfg.Display.Locale = "fr"
	cfg.Display.Timezone = "Mars/Olympus"
	cfg.Export.Filename = "{{ .Nope }}"
	cfg.Export.Pattern = "[unclosed"

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{
		"storage.driver",
		"display.locale",
		"display.timezone",
		"export.filename",
		"export.pattern",
	}, fields)
}

func TestValidate_RedisNeedsAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Storage.Driver = DriverRedis
	cfg.Storage.Redis.Addr = ""

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.Validate(), &fieldErrs)
	assert.Equal(t, "storage.redis.addr", fieldErrs[0].Field)
}

func TestValidate_Valid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	assert.NoError(t, cfg.Validate())
}

func TestExportFilename(t *testing.T) {
	cfg := DefaultConfig()
	at := time.Date(2025, 9, 8, 23, 30, 0, 0, time.FixedZone("X", -2*60*60))

	name, err := cfg.ExportFilename(at, 3)
	require.NoError(t, err)
	assert.Equal(t, "comments-backup-2025-09-09.json", name)

	cfg.Export.Filename = "../escape-{{ .Date }}.json"
	_, err = cfg.ExportFilename(at, 3)
	assert.Error(t, err)

	cfg.Export.Filename = "board-{{ .Count }}.json"
	name, err = cfg.ExportFilename(at, 3)
	require.NoError(t, err)
	assert.Equal(t, "board-3.json", name)
}
