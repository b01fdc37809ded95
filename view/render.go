// Package view turns the current sensor state into the screen shown to
// clients. Rendering is a pure function of the snapshot.
package view

import (
	"fmt"

	"github.com/LubenZA/ViewCompass/state"
)

// Screen is one rendered frame: the step/distance text block, the digital
// heading readout, and the compass dial as inline SVG.
type Screen struct {
	StepsLine    string `json:"steps_line"`
	DistanceLine string `json:"distance_line"`
	Readout      string `json:"readout"`
	Dial         string `json:"dial"`
}

// Render composes a Screen from a snapshot.
func Render(snap state.Snapshot) Screen {
	screen := Screen{
		Readout: fmt.Sprintf("%d° %s", int(snap.Heading.Degrees), snap.Heading.Cardinal),
		Dial:    DialSVG(snap.Heading.Degrees),
	}
	if snap.Steps == nil {
		screen.StepsLine = "Step count unavailable."
		screen.DistanceLine = "Distance unavailable."
	} else {
		screen.StepsLine = fmt.Sprintf("Steps: %d", snap.Steps.Steps)
		screen.DistanceLine = fmt.Sprintf("%.2f miles traveled.", snap.Steps.Miles)
	}
	return screen
}
