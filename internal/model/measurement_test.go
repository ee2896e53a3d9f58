package model

import (
	"testing"
)

func TestValidMetric(t *testing.T) {
	for _, m := range []Metric{MetricLevel, MetricWeight, MetricFat} {
		if !ValidMetric(m) {
			t.Errorf("ValidMetric(%q) = false, want true", m)
		}
	}
	for _, m := range []Metric{"", "height", "password_hash", "LEVEL"} {
		if ValidMetric(m) {
			t.Errorf("ValidMetric(%q) = true, want false", m)
		}
	}
}

func TestMetricValue(t *testing.T) {
	m := &Measurement{Height: 172, Weight: 70.5, Fat: 15.2, Level: 42}

	if got := m.MetricValue(MetricWeight); got != 70.5 {
		t.Errorf("MetricValue(weight) = %v, want 70.5", got)
	}
	if got := m.MetricValue(MetricFat); got != 15.2 {
		t.Errorf("MetricValue(fat) = %v, want 15.2", got)
	}
	if got := m.MetricValue(MetricLevel); got != 42 {
		t.Errorf("MetricValue(level) = %v, want 42", got)
	}
}
