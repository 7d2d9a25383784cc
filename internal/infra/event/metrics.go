package event

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/styleseat/satchless/internal/event"
)

// MetricsSink counts status transitions by from/to status pair.
type MetricsSink struct {
	transitions *prometheus.CounterVec
}

func NewMetricsSink() *MetricsSink {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "satchless",
		Subsystem: "order",
		Name:      "status_transitions_total",
		Help:      "Total number of order status transitions.",
	}, []string{"from", "to"})

	prometheus.MustRegister(transitions)
	return &MetricsSink{transitions: transitions}
}

func (s *MetricsSink) OrderStatusChanged(_ context.Context, change event.StatusChange) {
	s.transitions.WithLabelValues(string(change.OldStatus), string(change.Order.Status)).Inc()
}
