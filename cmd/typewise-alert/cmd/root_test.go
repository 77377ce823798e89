package cmd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCollectTemperatures checks flag values come first and positional readings are parsed.
func TestCollectTemperatures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		flagValues []float64
		args       []string
		want       []float64
	}{
		{name: "positional only", args: []string{"25", "45"}, want: []float64{25, 45}},
		{name: "flags only", flagValues: []float64{-2, 25}, want: []float64{-2, 25}},
		{name: "flags then positional", flagValues: []float64{-2}, args: []string{"-3", "50.5"}, want: []float64{-2, -3, 50.5}},
		{name: "nothing", want: []float64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := collectTemperatures(tc.flagValues, tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := collectTemperatures(nil, []string{"25", "warm"})
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

// TestCheckFlags_NegativeReadings parses the documented invocation with a
// negative --temperature value and negative readings after "--".
func TestCheckFlags_NegativeReadings(t *testing.T) {
	t.Parallel()

	err := checkCmd.ParseFlags([]string{"-k", "passive", "-T", "-2", "-T", "25", "--", "-3", "45"})
	require.NoError(t, err)
	require.Equal(t, "passive", coolingType)

	got, err := collectTemperatures(temperatures, checkCmd.Flags().Args())
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 25, -3, 45}, got)
}
