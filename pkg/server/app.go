package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	icache "SignalEngine/internal/service/cache"
	"SignalEngine/internal/service/ratelimit"
	"SignalEngine/pkg/config"
	xhttp "SignalEngine/pkg/http"
	applogger "SignalEngine/pkg/logger"
)

const (
	limiterSweepEvery = time.Minute
	limiterIdle       = 10 * time.Minute
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	l          *applogger.Logger
	httpServer *xhttp.Server
	cache      icache.BytesCache
	limiter    *ratelimit.Limiter
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, c icache.BytesCache, rl *ratelimit.Limiter) *App {
	return &App{cfg: cfg, l: l, httpServer: srv, cache: c, limiter: rl}
}

// Run starts the application and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the application and blocks until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("signalengine started",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.Bool("upstream", a.cfg.Upstream.BaseURL != ""),
		applogger.Bool("redis", a.cfg.Cache.Redis.Enabled),
	)

	if a.limiter != nil {
		go a.sweepLimiter(ctx)
	}

	<-ctx.Done()
	a.l.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) sweepLimiter(ctx context.Context) {
	t := time.NewTicker(limiterSweepEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := a.limiter.Sweep(limiterIdle); n > 0 {
				a.l.Debug("ratelimit.sweep", applogger.Int("removed", n))
			}
		}
	}
}

// shutdown gracefully stops all services. The caller's context is already
// cancelled here, so shutdown runs on a fresh one bounded by the server.
func (a *App) shutdown() error {
	var errs []error
	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.l.Warn("cache close error", applogger.Error(err))
			errs = append(errs, err)
		}
	}
	a.l.Info("shutdown complete")
	return errors.Join(errs...)
}
