package backend

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts and times gateway calls.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ads",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total requests issued to the dental backend",
		}, []string{"operation", "entity", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ads",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests issued to the dental backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "entity"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// Observe records one request. statusCode 0 means the request never got a response.
func (m *Metrics) Observe(operation, entity string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "error"
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}
	m.requestsTotal.WithLabelValues(operation, entity, status).Inc()
	m.requestDuration.WithLabelValues(operation, entity).Observe(elapsed.Seconds())
}
