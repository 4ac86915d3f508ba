package entrypoint

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicon/internal/config"
	http_controllers "github.com/mrlokans/lexicon/internal/http"
	"github.com/mrlokans/lexicon/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Starting server", slog.String("addr", srv.Addr))
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutdown Server", slog.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the stats reporter)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server Shutdown", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

func Run(cfg *config.Config, version string) {
	logger := NewLogger(cfg.Log)
	logger.Info("Starting Lexicon", slog.String("version", version))

	dict, err := OpenDictionary(DictionaryOptions{
		Dir:          cfg.Dictionary.Dir,
		ManifestPath: cfg.ManifestPath,
		DatabasePath: cfg.Database.Path,
		Logger:       logger,
	})
	if err != nil {
		logger.Error("Failed to open dictionary", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dict.Close(); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	if cfg.Preload {
		start := time.Now()
		if err := dict.Service.Preload(context.Background()); err != nil {
			// Missing partitions are answered with 404 at request time.
			logger.Warn("Dictionary preload incomplete", slog.Any("error", err))
		}
		stats := dict.Service.Stats()
		logger.Info("Dictionary preloaded",
			slog.Int("partitions", stats.Partitions),
			slog.Int("words", stats.Words),
			slog.Duration("duration", time.Since(start)))
	}

	var statsReporter *scheduler.StatsReporter
	if cfg.Stats.Enabled {
		statsReporter = scheduler.NewStatsReporter(dict.Service, cfg.Stats.Schedule, logger)
		if err := statsReporter.Start(context.Background()); err != nil {
			logger.Warn("Failed to start stats reporter", slog.Any("error", err))
			statsReporter = nil
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Words:         dict.Service,
		DictionaryDir: cfg.Dictionary.Dir,
		Version:       version,
	}
	if dict.Database != nil {
		routerCfg.Database = dict.Database
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if statsReporter != nil {
			statsReporter.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
