package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domsvc "SignalEngine/internal/domain/service"
	"SignalEngine/pkg/config"
	applogger "SignalEngine/pkg/logger"
)

const spyPayload = `{
	"symbol": "SPY",
	"price": 512.25,
	"regime": {"label": "High Volatility Expansion"},
	"comparisons": [{"p_value": 0.03, "sample_high": {"count": 60}, "sample_low": {"count": 55}, "delta_mean": 0.5, "horizon": "D1"}],
	"walls": [{"strike": 510, "raw_strength": 80, "type": "put", "timeframe": "swing", "notional": 1200000}],
	"levels": {"prior_day_high": 515, "prior_day_low": 505, "pre_market_high": null}
}`

func newClient(t *testing.T, url string, mutate func(*config.Config)) *DashboardClient {
	t.Helper()
	cfg := config.Default()
	cfg.Upstream.BaseURL = url
	cfg.Upstream.Attempts = 1
	cfg.Upstream.Backoff = time.Millisecond
	if mutate != nil {
		mutate(cfg)
	}
	return NewDashboardClient(NewHTTPServiceBase(cfg, applogger.Nop()))
}

func TestFetchDashboardDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/SPY", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(spyPayload))
	}))
	defer srv.Close()

	p, err := newClient(t, srv.URL, nil).FetchDashboard(context.Background(), "SPY")
	require.NoError(t, err)

	assert.Equal(t, "SPY", p.Symbol)
	require.NotNil(t, p.Price)
	assert.Equal(t, 512.25, *p.Price)
	assert.Equal(t, "High Volatility Expansion", p.Regime.Label)
	require.Len(t, p.Comparisons, 1)
	assert.Equal(t, 55, p.Comparisons[0].SampleLow.Count)
	require.Len(t, p.Walls, 1)
	assert.Nil(t, p.Levels.PreMarketHigh)
	assert.Nil(t, p.Levels.PreMarketLow)
}

func TestFetchDashboardNotFoundDoesNotTrip(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func(cfg *config.Config) {
		cfg.Upstream.Breaker.ConsecutiveFailures = 2
	})
	for i := 0; i < 3; i++ {
		_, err := c.FetchDashboard(context.Background(), "NOPE")
		assert.ErrorIs(t, err, domsvc.ErrPayloadNotFound)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchDashboardBreakerOpens(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func(cfg *config.Config) {
		cfg.Upstream.Breaker.ConsecutiveFailures = 2
	})
	for i := 0; i < 2; i++ {
		_, err := c.FetchDashboard(context.Background(), "SPY")
		assert.ErrorIs(t, err, domsvc.ErrUpstreamUnavailable)
	}

	_, err := c.FetchDashboard(context.Background(), "SPY")
	assert.ErrorIs(t, err, domsvc.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetchDashboardCanceledCallsDoNotTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/dashboard/SLOW" {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(2 * time.Second):
			}
		}
		_, _ = w.Write([]byte(spyPayload))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func(cfg *config.Config) {
		cfg.Upstream.Breaker.ConsecutiveFailures = 2
	})
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(10*time.Millisecond, cancel)
		_, err := c.FetchDashboard(ctx, "SLOW")
		cancel()
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domsvc.ErrUpstreamUnavailable)
	}

	p, err := c.FetchDashboard(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, "SPY", p.Symbol)
}

func TestFetchDashboardRetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(spyPayload))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func(cfg *config.Config) {
		cfg.Upstream.Attempts = 3
	})
	p, err := c.FetchDashboard(context.Background(), "SPY")
	require.NoError(t, err)
	assert.Equal(t, "SPY", p.Symbol)
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchDashboardClientErrorNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, func(cfg *config.Config) {
		cfg.Upstream.Attempts = 3
	})
	_, err := c.FetchDashboard(context.Background(), "SPY")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domsvc.ErrUpstreamUnavailable)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchDashboardWithoutBaseURL(t *testing.T) {
	_, err := newClient(t, "", nil).FetchDashboard(context.Background(), "SPY")
	assert.ErrorIs(t, err, domsvc.ErrUpstreamUnavailable)
}
