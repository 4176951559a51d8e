package builder

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// App is the assembled HTTP service.
type App struct {
	server    *http.Server
	generator generationClient
	logger    *zap.Logger
}

// Run serves HTTP until SIGINT/SIGTERM or a server error, then drains
// in-flight requests and releases the generation client.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			a.logger.Error("Server error", zap.Error(err))
			a.release()
			return err
		}
	case <-ctx.Done():
		a.logger.Info("Received shutdown signal")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.logger.Info("Shutting down server gracefully", zap.Duration("timeout", shutdownTimeout))
	err := a.server.Shutdown(ctx)
	if err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
	}

	a.release()
	a.logger.Info("Application stopped")
	_ = a.logger.Sync()
	return err
}

func (a *App) release() {
	if err := a.generator.Close(); err != nil {
		a.logger.Warn("Generation client close error", zap.Error(err))
	}
}
