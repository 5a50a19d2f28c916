package service

import (
	"context"
	"errors"

	"SignalEngine/internal/domain/models"
)

var (
	// ErrPayloadNotFound means the backend has no snapshot for the symbol.
	ErrPayloadNotFound = errors.New("dashboard payload not found")
	// ErrUpstreamUnavailable covers transport failures, 5xx responses and an open breaker.
	ErrUpstreamUnavailable = errors.New("analytics backend unavailable")
)

// PayloadSource fetches the analytics snapshot for a symbol.
type PayloadSource interface {
	FetchDashboard(ctx context.Context, symbol string) (models.DashboardPayload, error)
}
