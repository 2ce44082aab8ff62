package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/content"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Log)

	articles, err := content.Load(cfg.Content.ArticlesPath)
	if err != nil {
		logging.Fatal("failed to load articles", "error", err)
	}

	// The store is optional: without it the API still serves articles and
	// diagnostics, and write/read endpoints answer 500.
	store, err := repository.Open(context.Background(), cfg.Database)
	if err != nil {
		var cerr *repository.ConnectError
		if errors.As(err, &cerr) {
			logger.Warn("document store unavailable, running degraded",
				"stage", cerr.Stage,
				"error", cerr.Err,
			)
		} else {
			logger.Warn("document store unavailable, running degraded", "error", err)
		}
	} else {
		logger.Info("document store connected")
	}
	defer store.Close()

	router := handler.NewRouter(handler.Services{
		Contact:     service.NewContactService(store),
		Analytics:   service.NewAnalyticsService(store),
		Diagnostics: service.NewDiagnosticsService(store, cfg.Database),
		Articles:    articles,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr, "articles", articles.Len())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
