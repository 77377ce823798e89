package battery

import (
	"errors"
	"fmt"
	"strings"
)

// CoolingType is the thermal management mode of a battery.
type CoolingType uint8

const (
	// PassiveCooling relies on ambient airflow only.
	PassiveCooling CoolingType = iota
	// HiActiveCooling uses high-capacity forced cooling.
	HiActiveCooling
	// MedActiveCooling uses medium-capacity forced cooling.
	MedActiveCooling

	// coolingTypeCount must stay last.
	coolingTypeCount
)

// BreachType is the classification of a reading against its permitted range.
// The numeric values are part of the controller frame.
type BreachType uint8

const (
	// Normal means the reading is within the permitted range, bounds included.
	Normal BreachType = iota
	// TooLow means the reading is below the lower bound.
	TooLow
	// TooHigh means the reading is above the upper bound.
	TooHigh

	// breachTypeCount must stay last.
	breachTypeCount
)

// AlertTarget selects the channel a breach is dispatched to.
type AlertTarget uint8

const (
	// ToController sends the breach to the battery controller.
	ToController AlertTarget = iota
	// ToEmail sends the breach by e-mail.
	ToEmail

	// alertTargetCount must stay last.
	alertTargetCount
)

// NumAlertTargets is the number of declared alert targets.
const NumAlertTargets = int(alertTargetCount)

var (
	// ErrUnknownCoolingType is returned when a cooling type name is not recognised.
	ErrUnknownCoolingType = errors.New("unknown cooling type")
	// ErrUnknownBreachType is returned when a breach type name is not recognised.
	ErrUnknownBreachType = errors.New("unknown breach type")
	// ErrUnknownAlertTarget is returned when an alert target is not recognised.
	ErrUnknownAlertTarget = errors.New("unknown alert target")
)

var (
	coolingTypeNames = [...]string{
		PassiveCooling:   "passive",
		HiActiveCooling:  "hi-active",
		MedActiveCooling: "med-active",
	}

	breachTypeNames = [...]string{
		Normal:  "normal",
		TooLow:  "too-low",
		TooHigh: "too-high",
	}

	alertTargetNames = [...]string{
		ToController: "controller",
		ToEmail:      "email",
	}
)

// Compile-time check that every name table covers its enumeration.
// Adding a variant without extending the tables breaks the build.
func _() {
	var x [1]struct{}
	_ = x[len(coolingTypeNames)-int(coolingTypeCount)]
	_ = x[len(breachTypeNames)-int(breachTypeCount)]
	_ = x[len(alertTargetNames)-int(alertTargetCount)]
}

// CoolingTypes returns every cooling type in declaration order.
func CoolingTypes() []CoolingType {
	result := make([]CoolingType, 0, coolingTypeCount)
	for c := range coolingTypeCount {
		result = append(result, c)
	}

	return result
}

// Valid reports whether c is one of the declared cooling types.
func (c CoolingType) Valid() bool {
	return c < coolingTypeCount
}

// String returns the canonical name of the cooling type.
func (c CoolingType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CoolingType(%d)", uint8(c))
	}

	return coolingTypeNames[c]
}

// ParseCoolingType converts a canonical name into a CoolingType.
func ParseCoolingType(s string) (CoolingType, error) {
	idx, ok := lookup(coolingTypeNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCoolingType, s)
	}

	return CoolingType(idx), nil
}

// Valid reports whether b is one of the declared breach types.
func (b BreachType) Valid() bool {
	return b < breachTypeCount
}

// String returns the canonical name of the breach type.
func (b BreachType) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BreachType(%d)", uint8(b))
	}

	return breachTypeNames[b]
}

// ParseBreachType converts a canonical name into a BreachType.
func ParseBreachType(s string) (BreachType, error) {
	idx, ok := lookup(breachTypeNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBreachType, s)
	}

	return BreachType(idx), nil
}

// AlertTargets returns every alert target in declaration order.
func AlertTargets() []AlertTarget {
	result := make([]AlertTarget, 0, alertTargetCount)
	for t := range alertTargetCount {
		result = append(result, t)
	}

	return result
}

// Valid reports whether t is one of the declared alert targets.
func (t AlertTarget) Valid() bool {
	return t < alertTargetCount
}

// String returns the canonical name of the alert target.
func (t AlertTarget) String() string {
	if !t.Valid() {
		return fmt.Sprintf("AlertTarget(%d)", uint8(t))
	}

	return alertTargetNames[t]
}

// ParseAlertTarget converts a canonical name into an AlertTarget.
func ParseAlertTarget(s string) (AlertTarget, error) {
	idx, ok := lookup(alertTargetNames[:], s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlertTarget, s)
	}

	return AlertTarget(idx), nil
}

// lookup finds s in names ignoring case, surrounding spaces and the
// underscore/dash distinction.
func lookup(names []string, s string) (int, bool) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")

	for i, name := range names {
		if name == s {
			return i, true
		}
	}

	return 0, false
}
