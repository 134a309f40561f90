package discordhook

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WebhookMetrics tracks webhook execution metrics
var WebhookMetrics = struct {
	ExecutionsTotal  *prometheus.CounterVec
	ExecutionLatency prometheus.Histogram
}{
	ExecutionsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discordhook_executions_total",
			Help: "Total number of webhook executions, split by webhook id and result",
		},
		[]string{"webhook_id", "result"},
	),
	ExecutionLatency: promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "discordhook_execution_latency_seconds",
			Help: "Latency of webhook executions in seconds",
		},
	),
}

func RecordWebhookExecution(webhookID Snowflake, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	WebhookMetrics.ExecutionsTotal.WithLabelValues(webhookID.String(), result).Inc()
	WebhookMetrics.ExecutionLatency.Observe(elapsed.Seconds())
}
