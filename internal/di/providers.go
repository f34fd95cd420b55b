package di

import (
	"fmt"

	domrepo "SqueezeWatch/internal/domain/repository"
	domsvc "SqueezeWatch/internal/domain/service"
	"SqueezeWatch/internal/handler/api"
	internalrepo "SqueezeWatch/internal/repository"
	"SqueezeWatch/internal/service/marketdata"
	"SqueezeWatch/internal/service/scheduler"
	"SqueezeWatch/internal/usecase"
	"SqueezeWatch/pkg/cache"
	"SqueezeWatch/pkg/config"
	xhttp "SqueezeWatch/pkg/http"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/metrics"
	"SqueezeWatch/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache selects the cache backend. Redis (fronted by a small memory
// layer) when configured, plain in-memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(
			cache.WithRedisHost(cfg.Cache.Redis.Host),
			cache.WithRedisPort(cfg.Cache.Redis.Port),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix("squeezewatch:"+cfg.Environment),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(redisCache,
			cache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize),
		), nil
	}
	return cache.NewMemoryCache(
		cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize),
	), nil
}

// ProvideEventStore creates the in-memory cycle observation log.
func ProvideEventStore() domrepo.EventStore {
	return internalrepo.NewMemoryEventStore()
}

// ProvideMarketData creates the market data provider with fallback behavior.
func ProvideMarketData(cfg *config.Config, c cache.Service, m domrepo.Metrics, l *xlogger.Logger) domsvc.MarketDataProvider {
	return marketdata.NewClient(cfg, c, m, l)
}

// ProvideQuoteStream creates the optional live quote stream. Nil when the
// stream is disabled in config.
func ProvideQuoteStream(cfg *config.Config, c cache.Service, m domrepo.Metrics, l *xlogger.Logger) domrepo.QuoteStream {
	if !cfg.Stream.Enabled {
		return nil
	}
	return marketdata.NewStream(
		cfg.Stream.APIKey,
		cfg.Stream.URL,
		cfg.Stream.Tickers,
		cfg.Stream.ReconnectDelay,
		cfg.Stream.PingInterval,
		cfg.Provider.CacheTTL,
		c, m, l,
	)
}

// ProvideSpecialistCalculator creates the specialist probability calculator.
func ProvideSpecialistCalculator(
	cfg *config.Config,
	provider domsvc.MarketDataProvider,
	store domrepo.EventStore,
	m domrepo.Metrics,
	l *xlogger.Logger,
) *usecase.SpecialistCalculator {
	return usecase.NewSpecialistCalculator(cfg, provider, store, m, l)
}

// ProvideUniversalCalculator creates the band-based calculator.
func ProvideUniversalCalculator(provider domsvc.MarketDataProvider, m domrepo.Metrics, l *xlogger.Logger) *usecase.UniversalCalculator {
	return usecase.NewUniversalCalculator(provider, m, l)
}

// ProvideMarketScanner creates the universe scanner.
func ProvideMarketScanner(cfg *config.Config, provider domsvc.MarketDataProvider, l *xlogger.Logger) *usecase.MarketScanner {
	return usecase.NewMarketScanner(cfg, provider, l)
}

// ProvideScheduler creates the daily refresh scheduler.
func ProvideScheduler(cfg *config.Config, scanner *usecase.MarketScanner, l *xlogger.Logger) *scheduler.Scheduler {
	return scheduler.New(cfg, scanner, l)
}

// ProvideHandler creates the HTTP handler with all routes.
func ProvideHandler(
	cfg *config.Config,
	l *xlogger.Logger,
	specialist *usecase.SpecialistCalculator,
	universal *usecase.UniversalCalculator,
	scanner *usecase.MarketScanner,
) xhttp.Handler {
	return api.NewSqueezeHandler(cfg, l, specialist, universal, scanner)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler xhttp.Handler,
	sched *scheduler.Scheduler,
	stream domrepo.QuoteStream,
	l *xlogger.Logger,
) *server.App {
	return server.New(cfg, handler, sched, stream, l)
}
