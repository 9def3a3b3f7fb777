package utils

import "fmt"

// Petroleum volume correction constants. The thermal expansion coefficient
// follows the ASTM-54B linear approximation for refined products around
// 830 kg/m3; the reference temperature is the industry-standard 15 degC.
const (
	ReferenceTempC = 15.0
	MinObservedC   = -10.0
	MaxObservedC   = 60.0

	// expansion coefficient per degC, scaled by density below
	baseExpansionCoeff = 0.00125
	baseDensityKgM3    = 830.0
)

// TemperatureRangeError reports an observed temperature outside the
// physically plausible measurement range. It is a rejected input, never a
// silent clamp.
type TemperatureRangeError struct {
	ObservedC float64
}

func (e *TemperatureRangeError) Error() string {
	return fmt.Sprintf("observed temperature %.1fC outside measurable range [%.1fC, %.1fC]",
		e.ObservedC, MinObservedC, MaxObservedC)
}

// VolumeCorrectionFactor returns the multiplier that converts litres
// observed at observedTempC to litres at 15 degC for a product of the given
// density. Deterministic given its inputs.
func VolumeCorrectionFactor(observedTempC, productDensityKgM3 float64) (float64, error) {
	if observedTempC < MinObservedC || observedTempC > MaxObservedC {
		return 0, &TemperatureRangeError{ObservedC: observedTempC}
	}
	if productDensityKgM3 <= 0 {
		productDensityKgM3 = baseDensityKgM3
	}

	// Lighter products expand more per degree. Scale the base coefficient
	// by the inverse density ratio, per the 54B linear approximation.
	coeff := baseExpansionCoeff * (baseDensityKgM3 / productDensityKgM3)
	factor := 1.0 - coeff*(observedTempC-ReferenceTempC)

	return factor, nil
}

// CorrectVolume converts raw litres at the observed temperature to litres
// at 15 degC.
func CorrectVolume(litres, observedTempC, productDensityKgM3 float64) (float64, error) {
	factor, err := VolumeCorrectionFactor(observedTempC, productDensityKgM3)
	if err != nil {
		return 0, err
	}
	return litres * factor, nil
}
