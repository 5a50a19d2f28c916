package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	domsvc "SignalEngine/internal/domain/service"
	svcmetrics "SignalEngine/internal/service/metrics"
	"SignalEngine/pkg/config"
	xhttp "SignalEngine/pkg/http"
	applogger "SignalEngine/pkg/logger"
)

// HTTPServiceBase is the shared transport for analytics backend clients: one
// HTTP client behind one circuit breaker, with bounded retries.
type HTTPServiceBase struct {
	baseURL  string
	client   *xhttp.Client
	breaker  *gobreaker.CircuitBreaker
	attempts int
	backoff  time.Duration
	l        *applogger.Logger
}

func NewHTTPServiceBase(cfg *config.Config, l *applogger.Logger) *HTTPServiceBase {
	svcmetrics.Register()

	up := cfg.Upstream
	b := &HTTPServiceBase{
		baseURL:  strings.TrimRight(up.BaseURL, "/"),
		client:   xhttp.NewClient(xhttp.WithTimeout(up.Timeout)),
		attempts: max(up.Attempts, 1),
		backoff:  up.Backoff,
		l:        l,
	}
	b.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "analytics-backend",
		MaxRequests: up.Breaker.MaxRequests,
		Interval:    up.Breaker.Interval,
		Timeout:     up.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= up.Breaker.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			// 4xx means the backend answered. A caller that went away says nothing about it.
			var se *xhttp.StatusError
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				(errors.As(err, &se) && !se.Temporary())
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			svcmetrics.BreakerState.WithLabelValues(name).Set(float64(to))
			l.Warn("upstream.breaker state_change",
				applogger.String("name", name),
				applogger.String("from", from.String()),
				applogger.String("to", to.String()),
			)
		},
	})
	return b
}

// GetJSON issues one GET through the breaker and decodes the JSON body into dest.
// Errors wrap domsvc.ErrPayloadNotFound or domsvc.ErrUpstreamUnavailable where they apply.
func (b *HTTPServiceBase) GetJSON(ctx context.Context, endpoint, path string, dest interface{}) error {
	if b.baseURL == "" {
		return fmt.Errorf("%w: base url not configured", domsvc.ErrUpstreamUnavailable)
	}

	start := time.Now()
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.client.SendAndParse(ctx, &xhttp.RequestOptions{
			Method: xhttp.MethodGet,
			URL:    b.baseURL + path,
		}, dest)
	})
	svcmetrics.UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err == nil {
		return nil
	}

	kind, err := mapError(err)
	svcmetrics.UpstreamErrors.WithLabelValues(endpoint, kind).Inc()
	return fmt.Errorf("get %s: %w", path, err)
}

// GetJSONWithRetry retries GetJSON on transient failures with linear backoff.
// An open breaker is not retried.
func (b *HTTPServiceBase) GetJSONWithRetry(ctx context.Context, endpoint, path string, dest interface{}) error {
	var err error
	for i := 1; i <= b.attempts; i++ {
		err = b.GetJSON(ctx, endpoint, path, dest)
		if err == nil || !retryable(err) || i == b.attempts {
			return err
		}
		b.l.Debug("upstream.retry",
			applogger.String("endpoint", endpoint),
			applogger.Int("attempt", i),
			applogger.Error(err),
		)
		select {
		case <-time.After(time.Duration(i) * b.backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func mapError(err error) (string, error) {
	var se *xhttp.StatusError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open", fmt.Errorf("%w: %w", domsvc.ErrUpstreamUnavailable, err)
	case errors.As(err, &se) && se.Code == http.StatusNotFound:
		return "not_found", fmt.Errorf("%w: %w", domsvc.ErrPayloadNotFound, err)
	case errors.As(err, &se) && !se.Temporary():
		return "client_error", err
	case errors.Is(err, context.Canceled):
		return "canceled", err
	default:
		return "unavailable", fmt.Errorf("%w: %w", domsvc.ErrUpstreamUnavailable, err)
	}
}

func retryable(err error) bool {
	return errors.Is(err, domsvc.ErrUpstreamUnavailable) &&
		!errors.Is(err, gobreaker.ErrOpenState) &&
		!errors.Is(err, gobreaker.ErrTooManyRequests)
}
