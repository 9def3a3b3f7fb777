package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		reference float64
		pct       float64
		want      bool
	}{
		{name: "Exact match", value: 100, reference: 100, pct: 0.5, want: true},
		{name: "Within tolerance above", value: 100.4, reference: 100, pct: 0.5, want: true},
		{name: "Within tolerance below", value: 99.6, reference: 100, pct: 0.5, want: true},
		{name: "Outside tolerance", value: 101, reference: 100, pct: 0.5, want: false},
		{name: "Symmetric below", value: 99, reference: 100, pct: 0.5, want: false},
		{name: "Zero reference requires exact match", value: 0.001, reference: 0, pct: 5.0, want: false},
		{name: "Zero reference with zero value", value: 0, reference: 0, pct: 5.0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinTolerance(tt.value, tt.reference, tt.pct))
		})
	}
}

func TestVariancePct(t *testing.T) {
	tests := []struct {
		name      string
		a         float64
		b         float64
		want      float64
		tolerance float64
	}{
		{name: "Equal values", a: 36000, b: 36000, want: 0, tolerance: 0},
		{name: "Percentage of the larger value", a: 36000, b: 35820, want: 0.5, tolerance: 0.001},
		{name: "Order independent", a: 35820, b: 36000, want: 0.5, tolerance: 0.001},
		{name: "Both zero", a: 0, b: 0, want: 0, tolerance: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VariancePct(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.42, Clamp01(0.42))
}
