package status

import "sync/atomic"

// Registry is the telemetry store served on the bridge /status endpoint
// Systems and the bridge cache pointers during construction and write atomics from their own goroutines
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap(func(v *atomic.Bool) any { return v.Load() }),
		Ints:    NewMetricMap(func(v *atomic.Int64) any { return v.Load() }),
		Floats:  NewMetricMap(func(v *AtomicFloat) any { return v.Get() }),
		Strings: NewMetricMap(func(v *AtomicString) any { return v.Load() }),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Export copies every metric into a flat map for serialization
func (r *Registry) Export() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.exportInto(out)
	r.Ints.exportInto(out)
	r.Floats.exportInto(out)
	r.Strings.exportInto(out)
	return out
}
