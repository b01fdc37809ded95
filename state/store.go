// Package state holds the screen's observable sensor state and notifies
// subscribers whenever a subsystem publishes a new value.
package state

import "sync"

// StepSummary is the trailing-week pedometer result. Both fields come from a
// single query response, so a snapshot either has the whole summary or none.
type StepSummary struct {
	Steps int64   `json:"steps"`
	Miles float64 `json:"miles"`
}

// HeadingState is the latest magnetic heading and its compass label.
type HeadingState struct {
	Degrees  float64 `json:"degrees"`
	Cardinal string  `json:"cardinal"`
}

// Snapshot is a consistent read of both entities. Steps is nil until the
// pedometer query succeeds.
type Snapshot struct {
	Steps   *StepSummary `json:"steps,omitempty"`
	Heading HeadingState `json:"heading"`
}

// Store is the single state container behind the screen. Each entity has
// exactly one writer; readers take snapshots under the lock so a half-written
// summary is never observable.
type Store struct {
	mu      sync.RWMutex
	steps   *StepSummary
	heading HeadingState
	subs    []chan Snapshot
}

// NewStore returns a store at the default heading (0 degrees, north) with no
// step summary yet.
func NewStore() *Store {
	return &Store{heading: HeadingState{Degrees: 0, Cardinal: "N"}}
}

// SetSteps publishes the pedometer summary. Called at most once per session.
func (s *Store) SetSteps(steps int64, miles float64) {
	s.mu.Lock()
	s.steps = &StepSummary{Steps: steps, Miles: miles}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// SetHeading publishes a heading update and its cardinal label.
func (s *Store) SetHeading(degrees float64, cardinal string) {
	s.mu.Lock()
	s.heading = HeadingState{Degrees: degrees, Cardinal: cardinal}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// Snapshot returns the current state of both entities.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Heading: s.heading}
	if s.steps != nil {
		summary := *s.steps
		snap.Steps = &summary
	}
	return snap
}

// Subscribe registers a listener. The channel holds one pending snapshot and
// coalesces: a slow consumer always receives the most recent state, never a
// backlog of stale ones.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	subs := s.subs
	s.mu.RUnlock()
	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// Replace the stale pending snapshot with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
