package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	probability    *prometheus.GaugeVec
	providerErrors *prometheus.CounterVec
	lastPrice      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
	cycleEvents    *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		probability: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "squeezewatch_probability",
				Help: "Last computed squeeze probability per ticker",
			},
			[]string{"ticker", "mode"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "squeezewatch_provider_errors_total",
				Help: "Market data provider failures recovered via fallback values",
			},
			[]string{"op"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "squeezewatch_last_price",
				Help: "Last observed price for a ticker",
			},
			[]string{"ticker"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "squeezewatch_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		cycleEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "squeezewatch_cycle_events_total",
				Help: "Cycle observations ingested over the webhook",
			},
			[]string{"ticker", "cycle_type"},
		),
	}
}

// RecordProbability records the last computed probability for a ticker.
func (r *Recorder) RecordProbability(ticker, mode string, value float64) {
	r.probability.WithLabelValues(ticker, mode).Set(value)
}

// RecordProviderError records a recovered provider failure.
func (r *Recorder) RecordProviderError(op string) {
	r.providerErrors.WithLabelValues(op).Inc()
}

// RecordLastPrice records the last price for a ticker.
func (r *Recorder) RecordLastPrice(ticker string, price float64) {
	r.lastPrice.WithLabelValues(ticker).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordCycleEvent records an ingested cycle observation.
func (r *Recorder) RecordCycleEvent(ticker, cycleType string) {
	r.cycleEvents.WithLabelValues(ticker, cycleType).Inc()
}
