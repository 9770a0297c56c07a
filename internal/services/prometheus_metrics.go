package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesTotal             *prometheus.CounterVec
	incomeTotal               *prometheus.CounterVec
	conversationsCreatedTotal prometheus.Counter
	chatCompletionsTotal      *prometheus.CounterVec
	chatCompletionDuration    prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_operations_total",
				Help: "Total number of expense write operations",
			},
			[]string{"operation"},
		),
		incomeTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "income_operations_total",
				Help: "Total number of income write operations",
			},
			[]string{"operation"},
		),
		conversationsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "conversations_created_total",
				Help: "Total number of chat conversations created",
			},
		),
		chatCompletionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_completions_total",
				Help: "Total number of chat completion requests by status",
			},
			[]string{"status"},
		),
		chatCompletionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "chat_completion_duration_milliseconds",
				Help:    "Chat completion duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_created":
		m.expensesTotal.WithLabelValues("create").Inc()
	case "expense_updated":
		m.expensesTotal.WithLabelValues("update").Inc()
	case "expense_deleted":
		m.expensesTotal.WithLabelValues("delete").Inc()
	case "income_created":
		m.incomeTotal.WithLabelValues("create").Inc()
	case "income_updated":
		m.incomeTotal.WithLabelValues("update").Inc()
	case "income_deleted":
		m.incomeTotal.WithLabelValues("delete").Inc()
	case "conversation_created":
		m.conversationsCreatedTotal.Inc()
	case "chat_completion":
		if status := tags["status"]; status != "" {
			m.chatCompletionsTotal.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "chat_completion" {
		m.chatCompletionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	// No gauge-backed metrics yet; keeps the recorder interface satisfied.
}
