// Package config resolves where the app keeps its data and how it logs: built-in defaults,
// then an optional TOML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/matt-steen/count-tracker/pkg/db"
	"github.com/rs/zerolog"
)

const dirName = ".count-tracker"

// Config holds the runtime settings.
type Config struct {
	DBPath   string `toml:"db_path" env:"COUNT_DB_PATH"`
	DBDriver string `toml:"db_driver" env:"COUNT_DB_DRIVER"`
	LogPath  string `toml:"log_path" env:"COUNT_LOG_PATH"`
	LogLevel string `toml:"log_level" env:"COUNT_LOG_LEVEL"`
}

type location struct {
	Path string `env:"COUNT_CONFIG"`
}

// Default returns the settings used when nothing is configured: data and logs live in
// ~/.count-tracker, or the working directory if there is no home directory.
func Default() Config {
	dir := dirName

	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, dirName)
	}

	return Config{
		DBPath:   filepath.Join(dir, "count.sqlite"),
		DBDriver: db.DriverCgo,
		LogPath:  filepath.Join(dir, "debug.log"),
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom reads the configuration from the given environment. If COUNT_CONFIG names a
// file, its values override the defaults; environment variables override both.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg := Default()
	opts := env.Options{Environment: environ}

	var loc location
	if err := env.ParseWithOptions(&loc, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if loc.Path != "" {
		if _, err := toml.DecodeFile(loc.Path, &cfg); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", loc.Path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the driver name and log level.
func (c Config) Validate() error {
	if c.DBDriver != db.DriverCgo && c.DBDriver != db.DriverPureGo {
		return fmt.Errorf("unsupported db driver %q (use %s or %s)", c.DBDriver, db.DriverCgo, db.DriverPureGo)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	if c.DBPath == "" {
		return errors.New("db path is empty")
	}

	return nil
}

// Level returns the configured zerolog level, defaulting to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
