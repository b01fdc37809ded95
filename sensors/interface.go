package sensors

import (
	"context"
	"time"
)

// PedometerCapabilities are the platform-reported feature flags for the
// pedometer. A range query is only issued when all three are true.
type PedometerCapabilities struct {
	EventTracking bool
	Distance      bool
	StepCounting  bool
}

// PedometerSample is one range-query response. DistanceMeters is nil when the
// platform could not attach a distance to the window.
type PedometerSample struct {
	Steps          int64
	DistanceMeters *float64
}

// PedometerService is the platform pedometer boundary.
type PedometerService interface {
	Capabilities() PedometerCapabilities
	QueryRange(ctx context.Context, start, end time.Time) (PedometerSample, error)
}

// HeadingService is the platform heading boundary. Subscribe delivers magnetic
// headings in degrees [0, 360) on onUpdate and diagnostic messages on onError.
// The returned stop function ends the subscription.
type HeadingService interface {
	Available() bool
	RequestPermission()
	Subscribe(onUpdate func(degrees float64), onError func(msg string)) (stop func())
}
