package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/binbot/internal/app"
	"github.com/allisson/binbot/internal/config"
)

// shutdownTimeout bounds the graceful stop of the servers.
const shutdownTimeout = 30 * time.Second

// stopper is a server that runs until Shutdown.
type stopper interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the API server, the metrics server and, when configured,
// the Telegram poller. It blocks until SIGINT/SIGTERM or until one of them
// fails, then stops the others.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	runner, err := container.TelegramRunner()
	if err != nil {
		return fmt.Errorf("failed to initialize telegram runner: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	servers := map[string]stopper{"api server": server}
	if metricsServer != nil {
		servers["metrics server"] = metricsServer
	}

	for name, s := range servers {
		g.Go(func() error {
			if err := s.Start(gctx); err != nil {
				return fmt.Errorf("%s error: %w", name, err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("%s shutdown: %w", name, err)
			}
			return nil
		})
	}

	if runner != nil {
		g.Go(func() error {
			if err := runner.Run(gctx); err != nil {
				return fmt.Errorf("telegram runner error: %w", err)
			}
			return nil
		})
	} else {
		logger.Info("telegram transport disabled")
	}

	err = g.Wait()
	if ctx.Err() != nil {
		logger.Info("shutdown signal received")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
