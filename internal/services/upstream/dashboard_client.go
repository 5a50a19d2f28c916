package upstream

import (
	"context"
	"fmt"
	"net/url"

	"SignalEngine/internal/domain/models"
	domsvc "SignalEngine/internal/domain/service"
)

// DashboardClient fetches per-symbol dashboard payloads from the analytics backend.
type DashboardClient struct{ base *HTTPServiceBase }

func NewDashboardClient(base *HTTPServiceBase) *DashboardClient {
	return &DashboardClient{base: base}
}

func (c *DashboardClient) FetchDashboard(ctx context.Context, symbol string) (models.DashboardPayload, error) {
	var p models.DashboardPayload
	path := "/api/dashboard/" + url.PathEscape(symbol)
	if err := c.base.GetJSONWithRetry(ctx, "dashboard", path, &p); err != nil {
		return models.DashboardPayload{}, fmt.Errorf("fetch dashboard %s: %w", symbol, err)
	}
	if p.Symbol == "" {
		p.Symbol = symbol
	}
	return p, nil
}

var _ domsvc.PayloadSource = (*DashboardClient)(nil)
