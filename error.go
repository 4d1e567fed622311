package vending

import (
	"encoding/json"
	"fmt"
)

// ErrInvalidTransition is an illegal customer action:
// there is no transition for Action when the machine holds Balance.
//
// It's an expected outcome of evaluation, not a bug.
type ErrInvalidTransition struct {
	Step    int // index of the rejected action among the attempted ones
	Balance Cents
	Action  Action
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("action #%d %s is invalid with balance %d", e.Step, e.Action, e.Balance)
}

// MarshalJSON allows us to marshal ErrInvalidTransition to json.
//
//	{
//		"step": 1,
//		"balance": 25,
//		"action": "vend soda",
//		"error": "error message"
//	}
func (e ErrInvalidTransition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Step    int    `json:"step"`
		Balance Cents  `json:"balance"`
		Action  Action `json:"action"`
		Err     string `json:"error"`
	}{
		Step:    e.Step,
		Balance: e.Balance,
		Action:  e.Action,
		Err:     e.Error(),
	})
}

// ErrUnrepresentableChange is returned by ExactChange when the amount
// cannot be paid out with the accepted coins.
type ErrUnrepresentableChange struct {
	Amount    Cents
	Remainder Cents
}

func (e ErrUnrepresentableChange) Error() string {
	return fmt.Sprintf("cannot make change for %d: %d left over", e.Amount, e.Remainder)
}

// ErrParseAction is returned when the text form of an action is malformed.
type ErrParseAction struct {
	Input  string
	Reason string
	Err    error
}

func (e ErrParseAction) Error() string {
	return fmt.Sprintf("parse action %q: %s", e.Input, e.Reason)
}
func (e ErrParseAction) Unwrap() error { return e.Err }
