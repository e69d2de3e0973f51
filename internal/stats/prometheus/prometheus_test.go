package prometheus

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/discochess/chessrules/internal/stats"
)

// family gathers reg and returns the metric family called name, or nil.
func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	return nil
}

func TestNew_DefaultRegistry(t *testing.T) {
	c := New(nil)
	if c.registry != prometheus.DefaultRegisterer {
		t.Error("registry should default to prometheus.DefaultRegisterer")
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter(stats.MetricMovesApplied, 5)
	c.IncCounter(stats.MetricMovesApplied, 3)

	f := family(t, reg, stats.MetricMovesApplied)
	if f == nil {
		t.Fatalf("%s not registered", stats.MetricMovesApplied)
	}
	if got := f.GetMetric()[0].GetCounter().GetValue(); got != 8 {
		t.Errorf("counter value = %v, want 8", got)
	}
}

func TestCollector_SetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge(stats.MetricCacheSize, 7)
	c.SetGauge(stats.MetricCacheSize, 42)

	f := family(t, reg, stats.MetricCacheSize)
	if f == nil {
		t.Fatalf("%s not registered", stats.MetricCacheSize)
	}
	if got := f.GetMetric()[0].GetGauge().GetValue(); got != 42 {
		t.Errorf("gauge value = %v, want 42", got)
	}
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	for _, v := range []float64{0.00002, 0.001, 0.5} {
		c.ObserveHistogram(stats.MetricStatusSeconds, v)
	}

	f := family(t, reg, stats.MetricStatusSeconds)
	if f == nil {
		t.Fatalf("%s not registered", stats.MetricStatusSeconds)
	}
	h := f.GetMetric()[0].GetHistogram()
	if got := h.GetSampleCount(); got != 3 {
		t.Errorf("histogram count = %v, want 3", got)
	}
	if got := len(h.GetBucket()); got != len(StatusBuckets) {
		t.Errorf("histogram buckets = %d, want %d", got, len(StatusBuckets))
	}
}

func TestCollector_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: stats.MetricMovesRejected,
		Help: stats.MetricMovesRejected,
	})
	reg.MustRegister(existing)
	existing.Add(100)

	c := New(reg)
	c.IncCounter(stats.MetricMovesRejected, 5)

	f := family(t, reg, stats.MetricMovesRejected)
	if f == nil {
		t.Fatalf("%s not registered", stats.MetricMovesRejected)
	}
	if got := f.GetMetric()[0].GetCounter().GetValue(); got != 105 {
		t.Errorf("counter value = %v, want 105", got)
	}
	if errs := c.Errors(); len(errs) != 0 {
		t.Errorf("Errors() = %v, want none", errs)
	}
}

func TestCollector_ConflictingDescriptor(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: stats.MetricMovesRejected,
		Help: "registered elsewhere",
	})
	reg.MustRegister(existing)
	existing.Add(100)

	c := New(reg)
	c.IncCounter(stats.MetricMovesRejected, 5)
	c.IncCounter(stats.MetricMovesRejected, 1)

	errs := c.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want one registration failure", errs)
	}
	if !strings.Contains(errs[0].Error(), stats.MetricMovesRejected) {
		t.Errorf("Errors()[0] = %v, want it to name the metric", errs[0])
	}
	if got := family(t, reg, stats.MetricMovesRejected).GetMetric()[0].GetCounter().GetValue(); got != 100 {
		t.Errorf("counter value = %v, want 100 (conflicting metric not exported)", got)
	}
}

func TestCollector_ConcurrentAccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IncCounter("concurrent_counter", 1)
				c.SetGauge("concurrent_gauge", int64(j))
				c.ObserveHistogram("concurrent_histogram", float64(j))
			}
		}()
	}
	wg.Wait()

	counter := family(t, reg, "concurrent_counter")
	if counter == nil {
		t.Fatal("concurrent_counter not found")
	}
	if got := counter.GetMetric()[0].GetCounter().GetValue(); got != 1000 {
		t.Errorf("counter value = %v, want 1000", got)
	}
	if family(t, reg, "concurrent_gauge") == nil {
		t.Error("concurrent_gauge not found")
	}
	hist := family(t, reg, "concurrent_histogram")
	if hist == nil {
		t.Fatal("concurrent_histogram not found")
	}
	if got := hist.GetMetric()[0].GetHistogram().GetSampleCount(); got != 1000 {
		t.Errorf("histogram count = %v, want 1000", got)
	}
}
