package fsm

import (
	"encoding/json"
	"fmt"
)

// ErrNoTransition reports the first action in a run that has no transition from the current state.
type ErrNoTransition[S, A comparable] struct {
	Step   int // index of the action in the run
	State  S
	Action A
}

func (e ErrNoTransition[S, A]) Error() string {
	return fmt.Sprintf("no transition from %v on %v at step %d", e.State, e.Action, e.Step)
}

// MarshalJSON allows us to marshal ErrNoTransition to json.
//
//	{
//		"step": 1,
//		"state": ...,
//		"action": ...,
//		"error": "error message"
//	}
func (e ErrNoTransition[S, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Step   int    `json:"step"`
		State  S      `json:"state"`
		Action A      `json:"action"`
		Err    string `json:"error"`
	}{
		Step:   e.Step,
		State:  e.State,
		Action: e.Action,
		Err:    e.Error(),
	})
}
