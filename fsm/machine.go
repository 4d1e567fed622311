package fsm

// Machine is a deterministic Finite-State-Machine (FSM) defined by a transition table.
//
// There are no explicit state set and no accept states:
// every state reached by following defined transitions is accepted.
//
// A Machine is never modified by Next, Run or Accepts,
// so it is safe to evaluate one Machine from many goroutines.
type Machine[S, A comparable] struct {
	Start       S
	Transitions Table[S, A]
}

// New returns a Machine starting from start, with an empty transition table.
func New[S, A comparable](start S) *Machine[S, A] {
	return &Machine[S, A]{
		Start:       start,
		Transitions: make(Table[S, A]),
	}
}

// Next returns the state reached from state on action.
func (m *Machine[S, A]) Next(state S, action A) (S, bool) {
	if m == nil {
		var zero S
		return zero, false
	}
	return m.Transitions.Lookup(state, action)
}

// Run replays actions from start, and returns the final state.
//
// Run stops at the first action without a transition and returns ErrNoTransition,
// actions after it are never looked at.
// An empty actions returns start unchanged.
func (m *Machine[S, A]) Run(start S, actions []A) (S, error) {
	state := start
	for i, action := range actions {
		next, ok := m.Next(state, action)
		if !ok {
			return state, ErrNoTransition[S, A]{Step: i, State: state, Action: action}
		}
		state = next
	}
	return state, nil
}

// Accepts returns true if all actions are valid when replayed from Start.
func (m *Machine[S, A]) Accepts(actions []A) bool {
	if m == nil {
		return len(actions) == 0
	}
	_, err := m.Run(m.Start, actions)
	return err == nil
}
