package sensors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardinalLabelBoundaries(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{22.4999, "N"},
		{22.5, "NE"},
		{67.4999, "NE"},
		{67.5, "E"},
		{112.5, "SE"},
		{157.5, "S"},
		{202.5, "SW"},
		{247.5, "W"},
		{292.5, "NW"},
		{337.4999, "NW"},
		{337.5, "N"},
		{359.999, "N"},
		{-5, "N"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CardinalLabel(tc.degrees), "heading %v", tc.degrees)
	}
}

func TestCardinalLabelUpdateSequence(t *testing.T) {
	headings := []float64{10, 50, 100, 337.9, 338.1}
	want := []string{"N", "NE", "E", "N", "N"}
	for i, h := range headings {
		require.Equal(t, want[i], CardinalLabel(h))
	}
}

func TestCardinalLabelTotal(t *testing.T) {
	valid := map[string]bool{
		"N": true, "NE": true, "E": true, "SE": true,
		"S": true, "SW": true, "W": true, "NW": true,
	}
	for h := 0.0; h < 360.0; h += 0.1 {
		require.True(t, valid[CardinalLabel(h)], "heading %v", h)
	}
}

func TestMilesFromMeters(t *testing.T) {
	require.InEpsilon(t, 6437.0*0.000621371, MilesFromMeters(6437.0), 1e-6)
	require.Zero(t, MilesFromMeters(0))
}
