package sensors

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// SimulatedPedometer reports a plausible trailing-week total so the dashboard
// runs on machines without a step counter.
type SimulatedPedometer struct{}

func NewSimulatedPedometer() *SimulatedPedometer {
	return &SimulatedPedometer{}
}

func (p *SimulatedPedometer) Capabilities() PedometerCapabilities {
	return PedometerCapabilities{EventTracking: true, Distance: true, StepCounting: true}
}

func (p *SimulatedPedometer) QueryRange(_ context.Context, start, end time.Time) (PedometerSample, error) {
	days := end.Sub(start).Hours() / 24
	perDay := 4000.0 + rand.Float64()*6000.0
	steps := int64(perDay * days)
	meters := float64(steps) * 0.75 // average stride
	return PedometerSample{Steps: steps, DistanceMeters: &meters}, nil
}

// DisabledPedometer reports no capabilities, which keeps the screen in its
// unavailable state. Selected with PEDOMETER_SOURCE=off.
type DisabledPedometer struct{}

func (DisabledPedometer) Capabilities() PedometerCapabilities {
	return PedometerCapabilities{}
}

func (DisabledPedometer) QueryRange(context.Context, time.Time, time.Time) (PedometerSample, error) {
	return PedometerSample{}, nil
}

// SimulatedHeading emits a random-walk heading on a fixed interval.
type SimulatedHeading struct {
	interval time.Duration
}

func NewSimulatedHeading(interval time.Duration) *SimulatedHeading {
	return &SimulatedHeading{interval: interval}
}

func (s *SimulatedHeading) Available() bool { return true }

func (s *SimulatedHeading) RequestPermission() {}

func (s *SimulatedHeading) Subscribe(onUpdate func(float64), onError func(string)) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		heading := rand.Float64() * 360.0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				heading += rand.Float64()*20.0 - 10.0
				heading = math.Mod(heading+360.0, 360.0)
				onUpdate(heading)
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
