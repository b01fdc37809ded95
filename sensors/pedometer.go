package sensors

import (
	"context"
	"time"

	"github.com/LubenZA/ViewCompass/state"
	"github.com/LubenZA/ViewCompass/telemetry"
)

// pedometerWindow is the trailing range shown on the screen.
const pedometerWindow = 7 * 24 * time.Hour

// PedometerReader issues one range query for the trailing week and publishes
// the result. Errors and missing capabilities leave the store untouched, so
// the screen keeps showing the unavailable text.
type PedometerReader struct {
	svc   PedometerService
	store *state.Store
	now   func() time.Time
}

func NewPedometerReader(svc PedometerService, store *state.Store) *PedometerReader {
	return &PedometerReader{svc: svc, store: store, now: time.Now}
}

// Initialize runs the one-shot query. Call it once per session; callers that
// must not block launch it on its own goroutine. There is no retry: a query
// error or a response without a distance is indistinguishable from a query
// that never returned.
func (r *PedometerReader) Initialize(ctx context.Context) {
	caps := r.svc.Capabilities()
	if !caps.EventTracking || !caps.Distance || !caps.StepCounting {
		return
	}

	end := r.now()
	start := end.Add(-pedometerWindow)

	sample, err := r.svc.QueryRange(ctx, start, end)
	if err != nil {
		return
	}
	if sample.DistanceMeters == nil {
		return
	}

	r.store.SetSteps(sample.Steps, MilesFromMeters(*sample.DistanceMeters))
	telemetry.RecordSteps(sample.Steps)
}
