//go:build wireinject
// +build wireinject

package di

import (
	"SqueezeWatch/pkg/config"
	"SqueezeWatch/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideCache,
		ProvideEventStore,
		ProvideMarketData,
		ProvideQuoteStream,

		// Use cases
		ProvideSpecialistCalculator,
		ProvideUniversalCalculator,
		ProvideMarketScanner,
		ProvideScheduler,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
