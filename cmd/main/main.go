package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matt-steen/count-tracker/pkg/config"
	"github.com/matt-steen/count-tracker/pkg/controller"
	"github.com/matt-steen/count-tracker/pkg/counter"
	"github.com/matt-steen/count-tracker/pkg/db"
	"github.com/matt-steen/count-tracker/pkg/palette"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	dirPerms := 0o755
	filePerms := 0o666

	for _, path := range []string{cfg.DBPath, cfg.LogPath} {
		if err := os.MkdirAll(filepath.Dir(path), fs.FileMode(dirPerms)); err != nil {
			panic(err)
		}
	}

	logFile, err := os.OpenFile(cfg.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		panic(err)
	}

	defer logFile.Close()

	zerolog.SetGlobalLevel(cfg.Level())

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	log.Info().Str("db", cfg.DBPath).Str("driver", cfg.DBDriver).Msg("starting application...")

	database, err := db.NewDatabase(ctx, cfg.DBDriver, cfg.DBPath)
	if err != nil {
		panic(err)
	}

	defer database.Close()

	controller, err := controller.NewController(ctx, counter.NewStore(database), palette.NewStore(database))
	if err != nil {
		panic(err)
	}

	if err := controller.Go(); err != nil {
		log.Error().Err(err).Msg("application exited with an error")
	}
}
