// Package checker implements the typewise-alert commands.
//
// Run classifies one or more readings for a battery and dispatches every
// breach to the console notifier of the selected target. PrintLimits renders
// the fixed temperature limits per cooling type.
package checker
