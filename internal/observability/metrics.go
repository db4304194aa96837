package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type moduleMetrics struct {
	configResolutionsTotal *prometheus.CounterVec
	configFallbacksTotal   *prometheus.CounterVec

	agentInvocationsTotal   *prometheus.CounterVec
	agentInvocationDuration *prometheus.HistogramVec

	httpRequestsTotal *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metricsInst *moduleMetrics
)

func getMetrics() *moduleMetrics {
	metricsOnce.Do(func() {
		m := &moduleMetrics{
			configResolutionsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "config_resolutions_total",
					Help: "Total AI config resolutions by outcome (remote, fallback, disabled).",
				},
				[]string{"outcome"},
			),
			configFallbacksTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "config_fallbacks_total",
					Help: "Total fallback substitutions by reason (no_client, eval_error).",
				},
				[]string{"reason"},
			),
			agentInvocationsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "agent_invocations_total",
					Help: "Total agent invocations by provider and status.",
				},
				[]string{"provider", "status"},
			),
			agentInvocationDuration: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "agent_invocation_duration_seconds",
					Help:    "Agent invocation duration in seconds by provider.",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider"},
			),
			httpRequestsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total HTTP requests by path and status code.",
				},
				[]string{"path", "code"},
			),
		}

		prometheus.MustRegister(
			m.configResolutionsTotal,
			m.configFallbacksTotal,
			m.agentInvocationsTotal,
			m.agentInvocationDuration,
			m.httpRequestsTotal,
		)

		metricsInst = m
	})

	return metricsInst
}

// EnsureRegistered initializes and registers metrics the first time it is called.
func EnsureRegistered() {
	_ = getMetrics()
}

func MetricsHandler() http.Handler {
	EnsureRegistered()
	return promhttp.Handler()
}

func RecordConfigResolution(outcome string) {
	m := getMetrics()
	m.configResolutionsTotal.WithLabelValues(outcome).Inc()
}

func RecordConfigFallback(reason string) {
	m := getMetrics()
	m.configFallbacksTotal.WithLabelValues(reason).Inc()
	m.configResolutionsTotal.WithLabelValues("fallback").Inc()
}

func RecordAgentInvocation(provider string, duration time.Duration, success bool) {
	m := getMetrics()
	status := "error"
	if success {
		status = "success"
	}
	m.agentInvocationsTotal.WithLabelValues(provider, status).Inc()
	m.agentInvocationDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func RecordHTTPRequest(path string, code int) {
	m := getMetrics()
	m.httpRequestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
}
