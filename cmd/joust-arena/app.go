package main

import (
	"context"
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/ericogr/joust-arena/internal/config"
	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/logging"
	"github.com/ericogr/joust-arena/internal/roster"
	"github.com/ericogr/joust-arena/internal/service"
	"github.com/ericogr/joust-arena/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Info("config file not found; using built-in defaults", logging.Fields{"config_path": path})
		cfg, err = config.Default()
	}
	if err != nil {
		logging.Fatal("Missing or invalid joust configuration", err, logging.Fields{"config_path": path, "hint": "see internal/config/default.yaml for the expected layout"})
	}
	return cfg
}

// applyEnvOverrides lets deployments move the listener and database
// without editing the config file.
func applyEnvOverrides(cfg *config.LoadedConfig) {
	if v := os.Getenv(constants.EnvAddr); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv(constants.EnvDBPath); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(constants.EnvMemory); v == "1" || v == "true" {
		cfg.Storage.Memory = true
	}
}

func createRepositoryOrExit(cfg *config.LoadedConfig) storage.Repository {
	if cfg.Storage.Memory {
		logging.Info("using in-memory storage; progress is lost on exit", nil)
		return storage.NewMemoryRepo()
	}
	db, err := storage.OpenAndMigrate(cfg.Storage.Path)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": cfg.Storage.Path})
	}
	return storage.NewSQLiteRepository(db)
}

func createSessionOrExit(cfg *config.LoadedConfig, repo storage.Repository) *service.Session {
	store := service.NewStore(repo, cfg.Storage.Key, func() (game.State, error) {
		return roster.NewState(cfg)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session, err := service.NewSession(ctx, store, service.SessionOptions{
		Rules:  cfg.Rules,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Pacing: cfg.Pacing(),
	})
	if err != nil {
		logging.Fatal("Failed to load game", err, logging.Fields{constants.LogFieldKey: cfg.Storage.Key})
	}
	return session
}
