package checker

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
)

// PrintLimits writes the temperature limits of every cooling type as a table.
func PrintLimits(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "COOLING\tLOWER °C\tUPPER °C"); err != nil {
		return fmt.Errorf("write limits: %w", err)
	}

	for _, c := range battery.CoolingTypes() {
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\n", c, float64(battery.LowerLimit), battery.UpperLimit(c)); err != nil {
			return fmt.Errorf("write limits: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write limits: %w", err)
	}

	return nil
}
