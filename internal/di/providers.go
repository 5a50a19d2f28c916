package di

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"SignalEngine/internal/domain/repository"
	domsvc "SignalEngine/internal/domain/service"
	"SignalEngine/internal/handler/api"
	icache "SignalEngine/internal/service/cache"
	"SignalEngine/internal/service/ratelimit"
	"SignalEngine/internal/services/classify"
	"SignalEngine/internal/services/upstream"
	"SignalEngine/internal/usecase"
	"SignalEngine/pkg/config"
	xhttp "SignalEngine/pkg/http"
	applogger "SignalEngine/pkg/logger"
	"SignalEngine/pkg/metrics"
	"SignalEngine/pkg/server"
)

// ProvideLogger creates the application logger from the log section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvideCache returns Redis when enabled, otherwise an in-memory TTL cache.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (icache.BytesCache, error) {
	if !cfg.Cache.Redis.Enabled {
		return icache.NewTTLCache(cfg.Cache.MaxSize, cfg.Cache.TTL), nil
	}
	rc, err := icache.NewRedisCache(context.Background(), icache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
		PoolSize: cfg.Cache.Redis.PoolSize,
		Prefix:   cfg.Cache.Redis.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	l.Info("redis cache connected", applogger.String("addr", cfg.Cache.Redis.Addr))
	return rc, nil
}

func ProvideRegimeAdjuster(cfg *config.Config) classify.RegimeAdjuster {
	return classify.NewRegimeAdjuster(cfg.Classify.RegimeBoost, cfg.Classify.RegimeDamping)
}

func ProvideClassifier(adj classify.RegimeAdjuster, m repository.Metrics) *usecase.Classifier {
	return usecase.NewClassifier(adj, m)
}

// ProvidePayloadSource creates the analytics backend client.
func ProvidePayloadSource(cfg *config.Config, l *applogger.Logger) domsvc.PayloadSource {
	if cfg.Upstream.BaseURL == "" {
		l.Warn("upstream.base_url not set; /api/dashboard will return 503")
	}
	return upstream.NewDashboardClient(upstream.NewHTTPServiceBase(cfg, l))
}

func ProvideSnapshotUseCase(src domsvc.PayloadSource, cl *usecase.Classifier, c icache.BytesCache, cfg *config.Config, l *applogger.Logger) *usecase.SnapshotUseCase {
	return usecase.NewSnapshotUseCase(src, cl, c, cfg.Cache.TTL, l)
}

func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

func ProvideClassifyHandler(l *applogger.Logger, cl *usecase.Classifier, snap *usecase.SnapshotUseCase, rl *ratelimit.Limiter) *api.ClassifyHandler {
	return api.NewClassifyHandler(l, cl, snap, rl)
}

// ProvideHTTPServer creates the echo server with the classification routes.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h *api.ClassifyHandler) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(l, []xhttp.Handler{h},
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
		xhttp.WithMetricsPath(metricsPath),
	)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, c icache.BytesCache, rl *ratelimit.Limiter) *server.App {
	return server.New(cfg, l, srv, c, rl)
}
