package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dturkuler/humandesign-1/internal/chartstore"
	"github.com/dturkuler/humandesign-1/internal/config"
	"github.com/dturkuler/humandesign-1/internal/server"
)

// #region main
func main() {
	configPath := flag.String("config", envOr("HD_CONFIG", ""), "path to config YAML")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	var store *chartstore.Store
	if cfg.DBPath != "" {
		store, err = chartstore.NewStore(cfg.DBPath)
		if err != nil {
			logger.Fatal("open store", zap.Error(err))
		}
		defer store.Close()
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(logger, store, cfg.DefaultZone).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("db", cfg.DBPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
