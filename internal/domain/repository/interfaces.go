package repository

import (
	"context"

	"SqueezeWatch/internal/domain/models"
)

// EventStore is the append-only log of externally posted cycle observations.
// Append-only by contract: entries are never updated or evicted, and the
// scoring path never reads them back.
type EventStore interface {
	Append(ticker string, event models.CycleEvent)
	List(ticker string) []models.CycleEvent
	Tickers() []string
}

// QuoteStream is a live market data stream that feeds the quote cache.
type QuoteStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Run(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Metrics records operational metrics for the scoring and provider paths.
type Metrics interface {
	RecordProbability(ticker, mode string, value float64)
	RecordProviderError(op string)
	RecordLastPrice(ticker string, price float64)
	RecordLatency(op string, seconds float64)
	RecordCycleEvent(ticker, cycleType string)
}
