package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStorefrontMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncCartMutation("add")
	m.IncCartMutation("add")
	m.IncDispatchAttempt("web")
	m.IncDispatchFailure()
	m.ObserveOrderPlaced(2500)

	if got := testutil.ToFloat64(m.cartMutations.WithLabelValues("add")); got != 2 {
		t.Fatalf("expected 2 add mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.dispatchAttempts.WithLabelValues("web")); got != 1 {
		t.Fatalf("expected 1 web attempt, got %v", got)
	}
	if got := testutil.ToFloat64(m.dispatchFailures); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.ordersPlaced); got != 1 {
		t.Fatalf("expected 1 placed order, got %v", got)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewStorefrontMetrics(nil)
	m.IncCartMutation("remove")
	m.IncDispatchAttempt("")
	m.IncDispatchFailure()
	m.ObserveOrderPlaced(0)
}
