package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	actMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pet_activity_log",
		Subsystem: "acts",
		Name:      "mutations_total",
		Help:      "Create/update/delete requests against the acts table, by operation and result.",
	}, []string{"op", "result"})
	lastActGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pet_activity_log",
		Subsystem: "acts",
		Name:      "last_act_timestamp_seconds",
		Help:      "Unix timestamp of the most recent act written through the API.",
	})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pet_activity_log",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(actMutations, lastActGauge, httpDuration)
}

// RecordMutation cuenta una mutación; result es "ok", "invalid", "not_found" o "error".
func RecordMutation(op, result string) {
	actMutations.WithLabelValues(op, result).Inc()
}

// RecordActWritten actualiza el watermark del último act escrito.
func RecordActWritten(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastActGauge.Set(float64(ts.Unix()))
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
