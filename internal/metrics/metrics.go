// Package metrics exposes Prometheus instrumentation for the gateway.
// Labels stay bounded: tool names, operation names, status codes and error
// kinds only — never queries, resource ids or credentials.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gmail_mcp"

// Recorder counts tool invocations and backend requests. A nil Recorder is
// valid and records nothing.
type Recorder struct {
	toolCalls   *prometheus.CounterVec
	backendReqs *prometheus.CounterVec
	backendDur  *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors. reg defaults
// to the global prometheus registerer when nil.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		backendReqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Backend requests by operation and HTTP status code.",
		}, []string{"operation", "code"}),
		backendDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Backend request latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(r.toolCalls, r.backendReqs, r.backendDur)
	return r
}

// ToolCall records one tool invocation. outcome is "ok" or an error kind.
func (r *Recorder) ToolCall(tool, outcome string) {
	if r == nil {
		return
	}
	r.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// BackendRequest records one backend call. code 0 means the request never
// produced a response.
func (r *Recorder) BackendRequest(op string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.backendReqs.WithLabelValues(op, strconv.Itoa(code)).Inc()
	r.backendDur.WithLabelValues(op).Observe(elapsed.Seconds())
}
