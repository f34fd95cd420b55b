package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "SqueezeWatch/internal/domain/repository"
	"SqueezeWatch/internal/service/scheduler"
	"SqueezeWatch/pkg/config"
	xhttp "SqueezeWatch/pkg/http"
	xlogger "SqueezeWatch/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	sched      *scheduler.Scheduler
	stream     domrepo.QuoteStream
	logger     *xlogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	handler xhttp.Handler,
	sched *scheduler.Scheduler,
	stream domrepo.QuoteStream,
	logger *xlogger.Logger,
) *App {
	return &App{
		cfg:     cfg,
		handler: handler,
		sched:   sched,
		stream:  stream,
		logger:  logger,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.sched.Start(); err != nil {
		a.logger.Error("scheduler start error", xlogger.Error(err))
		return err
	}

	if a.stream != nil {
		go func() {
			if err := a.stream.Run(ctx); err != nil {
				a.logger.Error("quote stream error", xlogger.Error(err))
			}
		}()
		a.logger.Info("quote stream started", xlogger.Strings("tickers", a.cfg.Stream.Tickers))
	}

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", xlogger.Error(err))
		return err
	}
	a.logger.Info("service started", xlogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	a.sched.Stop()

	if a.stream != nil {
		if err := a.stream.Close(); err != nil {
			a.logger.Warn("quote stream close error", xlogger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", xlogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
