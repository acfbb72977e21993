// Package machine guards state changes with a fixed set of allowed transitions.
package machine

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine holds the current state and moves it only along allowed transitions.
// It is safe for concurrent use.
type StateMachine[S State] struct {
	mu          sync.RWMutex
	current     S
	transitions []Allowable[S]
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](initial S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: initial, transitions: transitions}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// Current returns the state the machine is in
func (m *StateMachine[S]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CanTransition reports whether s is reachable from the current state
func (m *StateMachine[S]) CanTransition(s S) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.allowed(s)
}

// ToState moves the machine to s. The state is unchanged when the transition is not allowed.
func (m *StateMachine[S]) ToState(s S) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.allowed(s) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, s)
	}

	m.current = s
	return nil
}

func (m *StateMachine[S]) allowed(s S) bool {
	for _, transition := range m.transitions {
		// only transitions leaving the current state apply
		if transition.from != m.current {
			continue
		}

		if slices.Contains(transition.to, s) {
			return true
		}
	}

	return false
}
