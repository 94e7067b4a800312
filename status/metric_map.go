package status

import "sync"

// MetricMap owns the metrics of one value type, keyed by the names in keys.go
// Writers resolve a key once at construction and keep the pointer; only Get and export lock
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	load  func(*T) any
}

// NewMetricMap creates a map whose export reads each metric with load
func NewMetricMap[T any](load func(*T) any) *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
		load:  load,
	}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// exportInto copies current values into dst
func (m *MetricMap[T]) exportInto(dst map[string]any) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for k, ptr := range m.items {
		dst[k] = m.load(ptr)
	}
}
