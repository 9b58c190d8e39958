package state

import (
	"sync"

	"github.com/rs/zerolog"
)

// Listener receives the state tree after every dispatch.
type Listener func(State)

// Store owns the state tree and routes every mutation through Apply.
// Subscriptions are explicit and keyed by token: after Unsubscribe the
// listener is simply never called again, so a dispatch landing after a
// consumer has gone away is a no-op rather than an error.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]Listener
	nextSub int
	log     zerolog.Logger
}

func NewStore(log zerolog.Logger) *Store {
	return &Store{
		subs: make(map[int]Listener),
		log:  log,
	}
}

// State returns the current tree. The tree is treated as immutable by
// all consumers, so sharing the underlying slices is safe.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a transition and notifies subscribers with the
// resulting tree.
func (s *Store) Dispatch(t Transition) State {
	s.mu.Lock()
	s.state = Apply(s.state, t)
	next := s.state
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.log.Trace().Type("transition", t).Msg("state transition applied")

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// Subscribe registers a listener and returns a token for Unsubscribe.
func (s *Store) Subscribe(fn Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs[s.nextSub] = fn
	return s.nextSub
}

// Unsubscribe removes a listener. Unknown tokens are ignored.
func (s *Store) Unsubscribe(token int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, token)
}
