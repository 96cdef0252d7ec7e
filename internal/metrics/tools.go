package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Tool call outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeInvalid     = "invalid_arguments"
	OutcomeUnknownTool = "unknown_tool"
	OutcomeError       = "error"
)

// Tool Prometheus metrics.
var (
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kbase",
			Name:      "tool_calls_total",
			Help:      "Total number of tool calls",
		},
		[]string{"tool", "outcome"},
	)

	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kbase",
			Name:      "tool_call_duration_seconds",
			Help:      "Tool call duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"tool"},
	)

	ToolResponsesTruncatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kbase",
			Name:      "tool_responses_truncated_total",
			Help:      "Tool responses cut to the character limit",
		},
		[]string{"tool"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kbase",
			Name:      "search_results",
			Help:      "Number of documents returned per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 7, 10},
		},
		[]string{"filtered"}, // "true" when a category filter was set
	)
)

var toolMetricsRegistered bool

// RegisterToolMetrics registers Prometheus tool metrics. Must be called once from main.
func RegisterToolMetrics() {
	if toolMetricsRegistered {
		return
	}
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolCallDuration)
	prometheus.MustRegister(ToolResponsesTruncatedTotal)
	prometheus.MustRegister(SearchResults)
	toolMetricsRegistered = true
}

// ObserveToolCall records one finished tool call.
func ObserveToolCall(tool, outcome string, d time.Duration) {
	ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
	ToolCallDuration.WithLabelValues(tool).Observe(d.Seconds())
}
