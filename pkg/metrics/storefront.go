package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart activity and order hand-off outcomes.
type StorefrontMetrics struct {
	cartMutations    *prometheus.CounterVec
	dispatchAttempts *prometheus.CounterVec
	dispatchFailures prometheus.Counter
	ordersPlaced     prometheus.Counter
	orderValue       prometheus.Histogram
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	dispatchAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_dispatch_attempts_total",
		Help: "Order hand-off attempts by channel.",
	}, []string{"channel"})
	dispatchFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "order_dispatch_failures_total",
		Help: "Orders that could not be handed off on any channel.",
	})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders successfully handed off.",
	})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value_ksh",
		Help:    "Grand total of placed orders in KSH.",
		Buckets: prometheus.ExponentialBuckets(250, 2, 8),
	})
	reg.MustRegister(cartMutations, dispatchAttempts, dispatchFailures, ordersPlaced, orderValue)
	return &StorefrontMetrics{
		cartMutations:    cartMutations,
		dispatchAttempts: dispatchAttempts,
		dispatchFailures: dispatchFailures,
		ordersPlaced:     ordersPlaced,
		orderValue:       orderValue,
	}
}

// IncCartMutation increments the mutation counter for the named operation.
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncDispatchAttempt increments the attempt counter for the named channel.
func (m *StorefrontMetrics) IncDispatchAttempt(channel string) {
	if m == nil || m.dispatchAttempts == nil {
		return
	}
	m.dispatchAttempts.WithLabelValues(normalizeLabel(channel)).Inc()
}

// IncDispatchFailure increments the failed hand-off counter.
func (m *StorefrontMetrics) IncDispatchFailure() {
	if m == nil || m.dispatchFailures == nil {
		return
	}
	m.dispatchFailures.Inc()
}

// ObserveOrderPlaced records a successfully handed-off order and its value.
func (m *StorefrontMetrics) ObserveOrderPlaced(totalKSH int) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderValue.Observe(float64(totalKSH))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
