package vending

import (
	"errors"

	"github.com/Azure/go-vending/fsm"
)

// Evaluate replays actions on m from m.Start, and returns the final balance.
//
// The first action without transition fails the whole evaluation with ErrInvalidTransition,
// later actions are not processed.
func Evaluate(m *Fsm, actions []Action) (Cents, error) {
	var start Cents
	if m != nil {
		start = m.Start
	}
	return RunActions(m, start, actions)
}

// RunActions is Evaluate starting from the given balance instead of m.Start.
func RunActions(m *Fsm, start Cents, actions []Action) (Cents, error) {
	balance, err := m.Run(start, actions)
	if err != nil {
		var noTransition fsm.ErrNoTransition[Cents, Action]
		if errors.As(err, &noTransition) {
			return 0, ErrInvalidTransition{
				Step:    noTransition.Step,
				Balance: noTransition.State,
				Action:  noTransition.Action,
			}
		}
		return 0, err
	}
	return balance, nil
}

// Eval returns true if actions are valid from m.Start and end with a balance in range.
func Eval(m *Fsm, actions []Action) bool {
	balance, err := Evaluate(m, actions)
	return err == nil && balance.InRange()
}
