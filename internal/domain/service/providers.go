package service

import (
	"context"

	"SqueezeWatch/internal/domain/models"
)

// MarketDataProvider supplies prices and squeeze metrics for tickers.
//
// Fallback contract: implementations never return an error for upstream
// failures — a failed or empty fetch yields deterministic fallback values so
// every probability computation succeeds with best-effort data.
type MarketDataProvider interface {
	Quote(ctx context.Context, ticker string) (models.Quote, error)
	Stats(ctx context.Context, ticker string) (models.TickerStats, error)
	ShortInterest(ctx context.Context, ticker string) (models.ShortInterest, error)
}
