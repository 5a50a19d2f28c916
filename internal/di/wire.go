//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"SignalEngine/pkg/config"
	"SignalEngine/pkg/server"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Classification
		ProvideRegimeAdjuster,
		ProvideClassifier,

		// Analytics backend
		ProvidePayloadSource,
		ProvideSnapshotUseCase,

		// HTTP
		ProvideRateLimiter,
		ProvideClassifyHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
