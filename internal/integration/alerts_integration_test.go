package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/typewise-alert/internal/config"
	"github.com/oshokin/typewise-alert/internal/domain/battery"
	"github.com/oshokin/typewise-alert/internal/notify"
	"github.com/oshokin/typewise-alert/internal/service/alert"
	"github.com/oshokin/typewise-alert/internal/service/checker"
)

// reading is one step of the end-to-end sequence.
type reading struct {
	cooling     battery.CoolingType
	target      battery.AlertTarget
	temperature float64
}

// fullSequence walks every cooling type through normal, hot and cold readings on both targets.
func fullSequence() []reading {
	samples := map[battery.CoolingType][3]float64{
		battery.PassiveCooling:   {25, 45, -2},
		battery.HiActiveCooling:  {35, 50, -3},
		battery.MedActiveCooling: {30, 45, -1},
	}

	var result []reading

	for _, c := range battery.CoolingTypes() {
		for _, target := range battery.AlertTargets() {
			for _, temp := range samples[c] {
				result = append(result, reading{cooling: c, target: target, temperature: temp})
			}
		}
	}

	return result
}

// expectedBlock is the console output of one cooling type in fullSequence.
const expectedBlock = "feed : 0\n" +
	"feed : 2\n" +
	"feed : 1\n" +
	"To: a.b@c.com\nHi, the temperature is too high\n" +
	"To: a.b@c.com\nHi, the temperature is too low\n"

// TestRouter_FullSequence drives the router with console notifiers over the whole sequence.
func TestRouter_FullSequence(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	router := alert.NewRouter(
		notify.NewController(notify.WithWriter(&out)),
		notify.NewEmail("", notify.WithWriter(&out)),
	)

	for _, r := range fullSequence() {
		character, err := battery.NewBatteryCharacter(r.cooling, "BOSCH")
		require.NoError(t, err)

		_, err = router.CheckAndAlert(context.Background(), r.target, character, r.temperature)
		require.NoError(t, err)
	}

	require.Equal(t, strings.Repeat(expectedBlock, 3), out.String())
}

// TestChecker_MatchesRouter runs the same sequence through the checker service
// with a config file on disk and compares the output with the router's.
func TestChecker_MatchesRouter(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, config.Default()))

	var out bytes.Buffer

	for _, r := range fullSequence() {
		err := checker.Run(context.Background(), &checker.Options{
			ConfigPath:   cfgPath,
			Target:       r.target.String(),
			CoolingType:  r.cooling.String(),
			Brand:        "BOSCH",
			Temperatures: []float64{r.temperature},
			Out:          &out,
		})
		require.NoError(t, err)
	}

	require.Equal(t, strings.Repeat(expectedBlock, 3), out.String())
}
