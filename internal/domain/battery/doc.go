// Package battery contains the core domain types and rules for battery
// temperature classification.
//
// It defines the closed enumerations CoolingType, BreachType and AlertTarget,
// the BatteryCharacter descriptor, and the pure functions InferBreach and
// ClassifyTemperatureBreach that map a reading to a breach.
package battery
