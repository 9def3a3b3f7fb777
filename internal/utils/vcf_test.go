package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeCorrectionFactor(t *testing.T) {
	tests := []struct {
		name      string
		observedC float64
		density   float64
		wantAbove float64
		wantBelow float64
	}{
		{
			name:      "At reference temperature the factor is exactly one",
			observedC: 15.0,
			density:   830.0,
			wantAbove: 1.0,
			wantBelow: 1.0,
		},
		{
			name:      "Warm fuel shrinks to reference",
			observedC: 30.0,
			density:   830.0,
			wantAbove: 0.97,
			wantBelow: 1.0,
		},
		{
			name:      "Cold fuel expands to reference",
			observedC: 5.0,
			density:   830.0,
			wantAbove: 1.0,
			wantBelow: 1.03,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, err := VolumeCorrectionFactor(tt.observedC, tt.density)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, factor, tt.wantAbove)
			assert.LessOrEqual(t, factor, tt.wantBelow)
		})
	}
}

func TestVolumeCorrectionFactor_Deterministic(t *testing.T) {
	f1, err := VolumeCorrectionFactor(27.5, 845.0)
	require.NoError(t, err)
	f2, err := VolumeCorrectionFactor(27.5, 845.0)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
}

func TestVolumeCorrectionFactor_OutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		observedC float64
	}{
		{name: "Below measurable range", observedC: -12.0},
		{name: "Above measurable range", observedC: 61.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VolumeCorrectionFactor(tt.observedC, 830.0)
			require.Error(t, err)

			var rangeErr *TemperatureRangeError
			assert.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.observedC, rangeErr.ObservedC)
		})
	}
}

func TestCorrectVolume(t *testing.T) {
	// 36,000L loaded at 30C comes out near 35,325L at 15C
	corrected, err := CorrectVolume(36000, 30.0, 830.0)
	require.NoError(t, err)
	assert.InDelta(t, 35325.0, corrected, 50.0)

	// correction never exceeds a couple of percent in normal conditions
	assert.Less(t, corrected, 36000.0)
	assert.Greater(t, corrected, 35000.0)
}
