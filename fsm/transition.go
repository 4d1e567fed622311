package fsm

// Edge is the key of a transition: leaving state From on action On.
type Edge[S, A comparable] struct {
	From S
	On   A
}

// Table maps every defined (state, action) pair to the next state.
//
// A Table is deterministic by construction: each Edge has exactly one destination.
type Table[S, A comparable] map[Edge[S, A]]S

// Add puts the transition from --on--> to into the table, replacing any previous destination.
func (t Table[S, A]) Add(from S, on A, to S) {
	t[Edge[S, A]{From: from, On: on}] = to
}

// Lookup returns the destination of the transition, and whether it exists.
func (t Table[S, A]) Lookup(from S, on A) (S, bool) {
	to, ok := t[Edge[S, A]{From: from, On: on}]
	return to, ok
}

// Has returns true if there is a transition leaving from on action on.
func (t Table[S, A]) Has(from S, on A) bool {
	_, ok := t.Lookup(from, on)
	return ok
}

// From returns all transitions leaving the given state, keyed by action.
// WARNING: this is expensive
func (t Table[S, A]) From(from S) map[A]S {
	rv := make(map[A]S)
	for e, to := range t {
		if e.From == from {
			rv[e.On] = to
		}
	}
	return rv
}
