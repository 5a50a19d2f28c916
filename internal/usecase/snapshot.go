package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"SignalEngine/internal/domain/models"
	domsvc "SignalEngine/internal/domain/service"
	"SignalEngine/internal/service/cache"
	applogger "SignalEngine/pkg/logger"
)

// maxBatchSymbols bounds GetSnapshots fan-out.
const maxBatchSymbols = 20

// SnapshotUseCase fetches dashboard payloads from the backend and classifies them.
// Raw payloads are cached by symbol; classification runs on every call.
type SnapshotUseCase struct {
	source     domsvc.PayloadSource
	classifier *Classifier
	cache      cache.BytesCache
	ttl        time.Duration
	timeout    time.Duration
	l          *applogger.Logger
}

func NewSnapshotUseCase(source domsvc.PayloadSource, classifier *Classifier, c cache.BytesCache, ttl time.Duration, l *applogger.Logger) *SnapshotUseCase {
	return &SnapshotUseCase{
		source:     source,
		classifier: classifier,
		cache:      c,
		ttl:        ttl,
		timeout:    10 * time.Second,
		l:          l,
	}
}

func (uc *SnapshotUseCase) GetSnapshot(ctx context.Context, symbol, regimeOverride string) (*models.ClassifiedDashboard, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	p, err := uc.payload(ctx, symbol)
	if err != nil {
		uc.classifier.metrics.RecordError("snapshot_fetch")
		return nil, err
	}
	return uc.classifier.ClassifyDashboard(p, regimeOverride), nil
}

// GetSnapshots classifies several symbols concurrently. Per-symbol failures are
// reported in the batch rather than failing the call.
func (uc *SnapshotUseCase) GetSnapshots(ctx context.Context, symbols []string, regimeOverride string) (*models.SnapshotBatch, error) {
	seen := make(map[string]struct{}, len(symbols))
	uniq := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = normalizeSymbol(s)
		if _, dup := seen[s]; s == "" || dup {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	if len(uniq) == 0 {
		return nil, fmt.Errorf("at least one symbol required")
	}
	if len(uniq) > maxBatchSymbols {
		return nil, fmt.Errorf("at most %d symbols per request, got %d", maxBatchSymbols, len(uniq))
	}

	res := &models.SnapshotBatch{
		Dashboards: make(map[string]*models.ClassifiedDashboard, len(uniq)),
		Errors:     map[string]string{},
		Timestamp:  time.Now().UTC(),
	}

	type item struct {
		symbol string
		val    *models.ClassifiedDashboard
		err    error
	}
	ch := make(chan item, len(uniq))
	var wg sync.WaitGroup
	for _, s := range uniq {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			v, err := uc.GetSnapshot(ctx, symbol, regimeOverride)
			ch <- item{symbol, v, err}
		}(s)
	}
	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			res.Errors[it.symbol] = it.err.Error()
			continue
		}
		res.Dashboards[it.symbol] = it.val
	}

	if len(res.Errors) == 0 {
		res.Errors = nil
	}
	return res, nil
}

func (uc *SnapshotUseCase) payload(ctx context.Context, symbol string) (models.DashboardPayload, error) {
	key := cache.Key("payload", symbol)

	if uc.cache != nil {
		b, ok, err := uc.cache.GetBytes(ctx, key)
		switch {
		case err != nil:
			uc.l.Warn("snapshot.payload cache_get_error", applogger.String("symbol", symbol), applogger.Error(err))
		case ok:
			var p models.DashboardPayload
			if err := json.Unmarshal(b, &p); err == nil {
				uc.l.Debug("snapshot.payload cache_hit", applogger.String("symbol", symbol))
				return p, nil
			}
			uc.l.Warn("snapshot.payload cache_decode_error", applogger.String("symbol", symbol))
		}
	}

	start := time.Now()
	p, err := uc.source.FetchDashboard(ctx, symbol)
	if err != nil {
		uc.l.Error("snapshot.payload fetch_error",
			applogger.String("symbol", symbol),
			applogger.Duration("duration_ms", time.Since(start)),
			applogger.Error(err),
		)
		return models.DashboardPayload{}, err
	}
	uc.l.Debug("snapshot.payload fetched",
		applogger.String("symbol", symbol),
		applogger.Int("comparisons", len(p.Comparisons)),
		applogger.Int("walls", len(p.Walls)),
		applogger.Duration("duration_ms", time.Since(start)),
	)

	if uc.cache != nil {
		if b, err := json.Marshal(p); err == nil {
			if err := uc.cache.SetBytes(ctx, key, b, uc.ttl); err != nil {
				uc.l.Warn("snapshot.payload cache_set_error", applogger.String("symbol", symbol), applogger.Error(err))
			}
		}
	}
	return p, nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
