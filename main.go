package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"volunteer-match/internal/api"
	"volunteer-match/internal/config"
	"volunteer-match/internal/excel"
	"volunteer-match/internal/matcher"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Loaded once; an unavailable roster leaves the service up answering 500.
	store := excel.Load(cfg.DatasetPath, cfg.DatasetSheet, log)

	handler := api.NewHandler(matcher.New(store), log)
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewRouter(handler, log),
	}

	go func() {
		log.Info("volunteer match server listening", zap.String("addr", srv.Addr), zap.Int("volunteers", store.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
