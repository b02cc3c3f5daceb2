package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nostalgic/nostalgic/config"
	"nostalgic/nostalgic/container"
	"nostalgic/nostalgic/sources/psql"
	"nostalgic/nostalgic/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "logger init error:", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		logging.ErrorLogger.Error("server exited", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
	logging.Sync()
}

func run(cfg config.Config) error {
	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	var (
		handler http.Handler
		db      *psql.Database
	)
	if err := c.Invoke(func(h http.Handler, d *psql.Database) {
		handler, db = h, d
	}); err != nil {
		return err
	}
	defer db.Close()

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logging.AppLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logging.AppLogger.Info("server shutdown complete")
	return nil
}
