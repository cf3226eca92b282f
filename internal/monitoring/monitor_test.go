package monitoring

import (
	"testing"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	// Check if our metric is present
	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}

	// Check value
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, got %v", value)
	}

	// Uptime is always reported
	if _, exists := metrics["uptime_seconds"]; !exists {
		t.Error("Expected 'uptime_seconds' to be present in metrics")
	}
}

func TestMonitor_RecordMenuView(t *testing.T) {
	m := NewMonitor()

	m.RecordMenuView()
	m.RecordMenuView()
	m.RecordMenuView()

	value, exists := m.GetMetric("menu_views")
	if !exists {
		t.Fatal("Expected 'menu_views' to be present")
	}
	if value != 3 {
		t.Errorf("Expected 'menu_views' to be 3, got %v", value)
	}
}

func TestMonitor_RecordOrderPlaced(t *testing.T) {
	m := NewMonitor()

	m.RecordOrderPlaced(17000)
	m.RecordOrderPlaced(4500)

	count, _ := m.GetMetric("orders_placed")
	if count != 2 {
		t.Errorf("Expected 'orders_placed' to be 2, got %v", count)
	}

	value, _ := m.GetMetric("orders_value_total")
	if value != int64(21500) {
		t.Errorf("Expected 'orders_value_total' to be 21500, got %v", value)
	}
}

func TestMonitor_RecordWaiterRequest(t *testing.T) {
	m := NewMonitor()

	m.RecordWaiterRequest()

	value, exists := m.GetMetric("waiter_requests")
	if !exists || value != 1 {
		t.Errorf("Expected 'waiter_requests' to be 1, got %v", value)
	}
}

func TestMonitor_RecordDescriptionFallback(t *testing.T) {
	m := NewMonitor()

	m.RecordDescriptionFallback()

	value, exists := m.GetMetric("description_fallbacks")
	if !exists || value != 1 {
		t.Errorf("Expected 'description_fallbacks' to be 1, got %v", value)
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMenuView()
	m.RecordMetric("test_metric", "value")

	m.Reset()

	if _, exists := m.GetMetric("menu_views"); exists {
		t.Error("Expected metrics to be cleared after Reset")
	}
	if _, exists := m.GetMetric("test_metric"); exists {
		t.Error("Expected 'test_metric' to be cleared after Reset")
	}
}
