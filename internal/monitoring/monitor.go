package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters served on the metrics port.
var (
	menuViewsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menufacil_menu_views_total",
		Help: "Customer menu views recorded.",
	})
	ordersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menufacil_orders_placed_total",
		Help: "Orders submitted to the kitchen.",
	})
	waiterRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menufacil_waiter_requests_total",
		Help: "Waiter / bill requests raised by tables.",
	})
	descriptionFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menufacil_description_fallbacks_total",
		Help: "Dish description generations that fell back to the placeholder.",
	})
)

// Monitor collects and provides in-process metrics for the service.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordMenuView counts one customer menu view.
func (m *Monitor) RecordMenuView() {
	menuViewsTotal.Inc()
	m.bump("menu_views")
}

// RecordOrderPlaced counts one submitted order and its value.
func (m *Monitor) RecordOrderPlaced(total int64) {
	ordersPlacedTotal.Inc()
	m.bump("orders_placed")
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	prev, _ := m.metrics["orders_value_total"].(int64)
	m.metrics["orders_value_total"] = prev + total
}

// RecordWaiterRequest counts one staff signal.
func (m *Monitor) RecordWaiterRequest() {
	waiterRequestsTotal.Inc()
	m.bump("waiter_requests")
}

// RecordDescriptionFallback counts one failed description generation.
func (m *Monitor) RecordDescriptionFallback() {
	descriptionFallbacksTotal.Inc()
	m.bump("description_fallbacks")
}

func (m *Monitor) bump(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	prev, _ := m.metrics[name].(int)
	m.metrics[name] = prev + 1
}
