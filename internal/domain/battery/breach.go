package battery

import "fmt"

// LowerLimit is the lower temperature bound in Celsius shared by every cooling type.
const LowerLimit = 0

// upperLimits maps each cooling type to its upper temperature bound in Celsius.
var upperLimits = [...]float64{
	PassiveCooling:   35,
	HiActiveCooling:  45,
	MedActiveCooling: 40,
}

// Compile-time check that every cooling type has an upper limit.
func _() {
	var x [1]struct{}
	_ = x[len(upperLimits)-int(coolingTypeCount)]
}

// InferBreach classifies value against the inclusive range [lowerLimit, upperLimit].
// The caller guarantees lowerLimit <= upperLimit; otherwise the first matching
// branch wins and TooLow takes precedence.
func InferBreach(value, lowerLimit, upperLimit float64) BreachType {
	switch {
	case value < lowerLimit:
		return TooLow
	case value > upperLimit:
		return TooHigh
	default:
		return Normal
	}
}

// UpperLimit returns the upper temperature bound in Celsius for the cooling type.
// It panics on a value outside the declared set; text input must go through
// ParseCoolingType first.
func UpperLimit(coolingType CoolingType) float64 {
	if !coolingType.Valid() {
		panic(fmt.Sprintf("battery: %v has no upper limit", coolingType))
	}

	return upperLimits[coolingType]
}

// ClassifyTemperatureBreach classifies a temperature in Celsius against the
// limits of the cooling type.
func ClassifyTemperatureBreach(coolingType CoolingType, temperatureInC float64) BreachType {
	return InferBreach(temperatureInC, LowerLimit, UpperLimit(coolingType))
}
