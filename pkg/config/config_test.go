package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-steen/count-tracker/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg, err := config.LoadFrom(map[string]string{})
	assert.Nil(err)
	assert.Equal(config.Default(), cfg)
	assert.Equal("sqlite3", cfg.DBDriver)
	assert.Equal(zerolog.InfoLevel, cfg.Level())
	assert.Equal("count.sqlite", filepath.Base(cfg.DBPath))
}

func TestEnvOverrides(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg, err := config.LoadFrom(map[string]string{
		"COUNT_DB_PATH":   "/tmp/counts.sqlite",
		"COUNT_DB_DRIVER": "sqlite",
		"COUNT_LOG_LEVEL": "debug",
	})
	assert.Nil(err)
	assert.Equal("/tmp/counts.sqlite", cfg.DBPath)
	assert.Equal("sqlite", cfg.DBDriver)
	assert.Equal(zerolog.DebugLevel, cfg.Level())
	assert.Equal(config.Default().LogPath, cfg.LogPath)
}

func TestFileThenEnv(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
db_path = "/data/file.sqlite"
log_path = "/data/file.log"
log_level = "warn"
`
	assert.Nil(os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := config.LoadFrom(map[string]string{
		"COUNT_CONFIG":    path,
		"COUNT_LOG_LEVEL": "error",
	})
	assert.Nil(err)
	assert.Equal("/data/file.sqlite", cfg.DBPath)
	assert.Equal("/data/file.log", cfg.LogPath)
	assert.Equal("sqlite3", cfg.DBDriver)
	assert.Equal(zerolog.ErrorLevel, cfg.Level())
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	_, err := config.LoadFrom(map[string]string{"COUNT_CONFIG": "/alwfkjasfd/config.toml"})
	assert.NotNil(err)
	assert.Contains(err.Error(), "error reading config file")
}

func TestInvalidValues(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	_, err := config.LoadFrom(map[string]string{"COUNT_DB_DRIVER": "postgres"})
	assert.EqualError(err, `unsupported db driver "postgres" (use sqlite3 or sqlite)`)

	_, err = config.LoadFrom(map[string]string{"COUNT_LOG_LEVEL": "verbose"})
	assert.NotNil(err)
	assert.Contains(err.Error(), `invalid log level "verbose"`)
}
