package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericogr/joust-arena/internal/api"
	"github.com/ericogr/joust-arena/internal/constants"
	"github.com/ericogr/joust-arena/internal/logging"
	"github.com/ericogr/joust-arena/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	if lvl := os.Getenv(constants.EnvLogLevel); lvl != "" {
		logging.SetLevel(lvl)
	}
	gin.SetMode(gin.ReleaseMode)

	// Config path may be provided via JOUST_CONFIG; a missing file means
	// the built-in defaults are used.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)
	applyEnvOverrides(cfg)

	repo := createRepositoryOrExit(cfg)
	session := createSessionOrExit(cfg, repo)
	defer session.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           api.NewRouter(api.NewGameHandler(session)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: srv.Addr, constants.LogFieldVersion: version.Version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Failed to start server", err, nil)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("graceful shutdown failed", err, nil)
	}
	logging.Info("Server stopped", nil)
}
