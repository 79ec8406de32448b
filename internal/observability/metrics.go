package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the chat agent.
type Metrics struct {
	MessagesProcessed    *prometheus.CounterVec // label: intent
	WeatherFetches       *prometheus.CounterVec // label: outcome={success,error}
	WeatherFetchDuration prometheus.Histogram
	HistoryEntries       prometheus.Gauge
}

// NewMetrics creates and registers all agent metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.MessagesProcessed,
		m.WeatherFetches,
		m.WeatherFetchDuration,
		m.HistoryEntries,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chat_agent",
			Name:      "messages_processed_total",
			Help:      "Messages processed, by classified intent.",
		}, []string{"intent"}),
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chat_agent",
			Name:      "weather_fetches_total",
			Help:      "Weather provider fetches, by outcome.",
		}, []string{"outcome"}),
		WeatherFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chat_agent",
			Name:      "weather_fetch_duration_seconds",
			Help:      "Duration of weather provider fetches.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		HistoryEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chat_agent",
			Name:      "history_entries",
			Help:      "Conversation history entries currently retained.",
		}),
	}
}
