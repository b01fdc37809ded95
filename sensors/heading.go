package sensors

import (
	"log"
	"os"
	"sync"

	"github.com/LubenZA/ViewCompass/state"
	"github.com/LubenZA/ViewCompass/telemetry"
)

// HeadingTracker subscribes to continuous heading updates and publishes each
// one with its cardinal label. Delivery errors are logged and the last valid
// heading stays on screen.
type HeadingTracker struct {
	svc    HeadingService
	store  *state.Store
	logger *log.Logger

	mu   sync.Mutex
	stop func()
}

// TrackerOption configures a HeadingTracker.
type TrackerOption func(*HeadingTracker)

// WithLogger overrides the destination for delivery-error diagnostics.
func WithLogger(logger *log.Logger) TrackerOption {
	return func(t *HeadingTracker) {
		t.logger = logger
	}
}

func NewHeadingTracker(svc HeadingService, store *state.Store, opts ...TrackerOption) *HeadingTracker {
	t := &HeadingTracker{
		svc:    svc,
		store:  store,
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start requests permission (fire-and-forget) and subscribes when heading
// sensing is available. When it is not, the store keeps its default north
// heading for the whole session. There is no automatic restart after a
// permission revocation; callers restart via Stop and Start.
func (t *HeadingTracker) Start() {
	t.svc.RequestPermission()
	if !t.svc.Available() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	t.stop = t.svc.Subscribe(t.handleUpdate, t.handleError)
}

// Stop ends the subscription. Safe to call when not started.
func (t *HeadingTracker) Stop() {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (t *HeadingTracker) handleUpdate(degrees float64) {
	t.store.SetHeading(degrees, CardinalLabel(degrees))
	telemetry.RecordHeading(degrees)
}

func (t *HeadingTracker) handleError(msg string) {
	t.logger.Printf("heading update error: %s", msg)
}
