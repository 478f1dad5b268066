package intent

import "sync"

// State is the key map written by input collaborators and read once per step.
// Writers may run on any goroutine; Snapshot swaps the double buffer under the
// lock so a step never observes a half-applied event batch.
type State struct {
	mu       sync.Mutex
	pending  [ActionCount]bool
	current  [ActionCount]bool
	previous [ActionCount]bool
}

// Set records the pressed state of an action. Out-of-range actions are ignored.
func (s *State) Set(a Action, pressed bool) {
	if a <= ActionNone || a >= ActionCount {
		return
	}
	s.mu.Lock()
	s.pending[a] = pressed
	s.mu.Unlock()
}

// Press is shorthand for Set(a, true).
func (s *State) Press(a Action) { s.Set(a, true) }

// Release is shorthand for Set(a, false).
func (s *State) Release(a Action) { s.Set(a, false) }

// ReleaseAll clears every pending action, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	s.mu.Lock()
	s.pending = [ActionCount]bool{}
	s.mu.Unlock()
}

// Snapshot promotes the pending key map to current and returns the intent for
// this step.
func (s *State) Snapshot() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previous = s.current
	s.current = s.pending
	return FromActions(s.current)
}

// JustPressed reports whether the action went down in the latest Snapshot.
func (s *State) JustPressed(a Action) bool {
	if a <= ActionNone || a >= ActionCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current[a] && !s.previous[a]
}
