package fractal

import (
	"math/rand"
	"sync"
	"time"
)

// A Session is the mutable explorer state shared between an interactive
// front end and the renderer. Mutations take the write lock and flag the
// viewport dirty; Viewport hands out isolated snapshots for rendering.
type Session struct {
	mu    sync.RWMutex
	view  Viewport
	dirty bool
	rng   *rand.Rand
}

// NewSession starts a session at view. The rng drives Randomize; passing
// nil seeds one from the clock. A new session is dirty so the first frame
// gets drawn.
func NewSession(view Viewport, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{view: view, dirty: true, rng: rng}
}

// Viewport returns a snapshot of the current state. A render pass works
// from one snapshot rather than reading fields piecemeal.
func (s *Session) Viewport() Viewport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Update applies fn to the viewport under the write lock and marks the
// session dirty.
func (s *Session) Update(fn func(*Viewport)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.view)
	s.dirty = true
}

// Pan drags the center by (dx, dy) pixels.
func (s *Session) Pan(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.Panned(dx, dy)
	s.dirty = true
}

// Zoom applies one scroll notch. A notch that would leave the supported
// zoom range changes nothing and reports false.
func (s *Session) Zoom(scroll float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	zoomed, ok := s.view.Zoomed(scroll)
	if !ok {
		return false
	}

	s.view = zoomed
	s.dirty = true
	return true
}

// Randomize redraws the palette and formula parameters from the session's
// rng.
func (s *Session) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = s.view.Randomized(s.rng)
	s.dirty = true
}

// NeedsRender reports whether the viewport changed since the previous call,
// clearing the flag.
func (s *Session) NeedsRender() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := s.dirty
	s.dirty = false
	return dirty
}
