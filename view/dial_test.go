package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDialTickMarks(t *testing.T) {
	svg := DialSVG(0)

	require.Equal(t, 36, strings.Count(svg, "<line"))
	require.Equal(t, 4, strings.Count(svg, accentColor), "one accent tick per cardinal direction")
	require.Equal(t, 32, strings.Count(svg, neutralColor))
}

func TestDialRotations(t *testing.T) {
	svg := DialSVG(47)

	// Face counter-rotates by the heading, pointer rotates with it.
	require.Contains(t, svg, `rotate(-47.0 100 100)`)
	require.Contains(t, svg, `rotate(47.0 100 100)`)
}
