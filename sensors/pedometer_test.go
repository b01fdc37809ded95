package sensors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LubenZA/ViewCompass/state"
)

type fakePedometer struct {
	caps       PedometerCapabilities
	sample     PedometerSample
	err        error
	queries    int
	start, end time.Time
}

func (f *fakePedometer) Capabilities() PedometerCapabilities { return f.caps }

func (f *fakePedometer) QueryRange(_ context.Context, start, end time.Time) (PedometerSample, error) {
	f.queries++
	f.start, f.end = start, end
	return f.sample, f.err
}

func allCaps() PedometerCapabilities {
	return PedometerCapabilities{EventTracking: true, Distance: true, StepCounting: true}
}

func TestPedometerPublishesSummary(t *testing.T) {
	meters := 6437.0
	svc := &fakePedometer{caps: allCaps(), sample: PedometerSample{Steps: 8123, DistanceMeters: &meters}}
	store := state.NewStore()

	reader := NewPedometerReader(svc, store)
	reader.Initialize(context.Background())

	snap := store.Snapshot()
	require.NotNil(t, snap.Steps)
	require.Equal(t, int64(8123), snap.Steps.Steps)
	require.InDelta(t, 4.00, snap.Steps.Miles, 0.001) // 6437 m, shown as "4.00"
	require.Equal(t, 1, svc.queries)
}

func TestPedometerQueriesTrailingWeek(t *testing.T) {
	meters := 100.0
	svc := &fakePedometer{caps: allCaps(), sample: PedometerSample{Steps: 1, DistanceMeters: &meters}}
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	reader := NewPedometerReader(svc, state.NewStore())
	reader.now = func() time.Time { return now }
	reader.Initialize(context.Background())

	require.Equal(t, now, svc.end)
	require.Equal(t, now.Add(-7*24*time.Hour), svc.start)
}

func TestPedometerCapabilityAbsent(t *testing.T) {
	missing := []PedometerCapabilities{
		{},
		{EventTracking: true, Distance: true},
		{EventTracking: true, StepCounting: true},
		{Distance: true, StepCounting: true},
	}
	for _, caps := range missing {
		svc := &fakePedometer{caps: caps}
		store := state.NewStore()

		NewPedometerReader(svc, store).Initialize(context.Background())

		require.Nil(t, store.Snapshot().Steps)
		require.Zero(t, svc.queries, "no query should be issued for %+v", caps)
	}
}

func TestPedometerQueryErrorIsSilent(t *testing.T) {
	svc := &fakePedometer{caps: allCaps(), err: errors.New("sensor busy")}
	store := state.NewStore()

	NewPedometerReader(svc, store).Initialize(context.Background())

	require.Nil(t, store.Snapshot().Steps)
}

func TestPedometerMissingDistanceIsSilent(t *testing.T) {
	svc := &fakePedometer{caps: allCaps(), sample: PedometerSample{Steps: 500}}
	store := state.NewStore()

	NewPedometerReader(svc, store).Initialize(context.Background())

	require.Nil(t, store.Snapshot().Steps)
}
