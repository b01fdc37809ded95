package sensors

// milesPerMeter is the linear conversion factor used for the distance line.
const milesPerMeter = 0.000621371

// cardinalLabels in clockwise order starting at north.
var cardinalLabels = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CardinalLabel maps a heading in degrees to one of the 8 compass labels.
// Sectors are 45 degrees wide and half-open on the upper edge, with boundaries
// at 22.5, 67.5, ... 337.5. Anything at or past 337.5 wraps back to north, and
// negative input falls back to north as well.
func CardinalLabel(degrees float64) string {
	if degrees < 22.5 || degrees >= 337.5 {
		// Covers the wrap sector and negative input.
		return "N"
	}
	idx := int((degrees-22.5)/45) + 1
	if idx < 1 || idx > 7 {
		return "N"
	}
	return cardinalLabels[idx]
}

// MilesFromMeters converts a distance reported in meters to miles.
func MilesFromMeters(meters float64) float64 {
	return meters * milesPerMeter
}
