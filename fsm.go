package vending

import "github.com/Azure/go-vending/fsm"

// Fsm is the vending machine: states are balances, symbols are customer actions.
//
// Fsm built by Create always starts from 0,
// but Evaluate accepts any Fsm, including hand-made ones starting elsewhere.
type Fsm = fsm.Machine[Cents, Action]

// Create builds the Fsm of a vending machine selling the items in prices (item -> price).
//
// The transition table is computed eagerly, so each step of an evaluation is a map lookup:
//
//	(b, Insert(d)) -> b + d		for each accepted coin d, and b + d <= MaxBalance
//	(b, Vend(item)) -> b - price	for price <= b <= MaxBalance
//
// An item priced above MaxBalance gets no transition, thus can never be vended.
// Use catalog.Validate to reject such items beforehand.
func Create(prices map[string]Cents) *Fsm {
	m := fsm.New[Cents, Action](0)
	for _, coin := range denominations {
		for b := Cents(0); b+coin <= MaxBalance; b++ {
			m.Transitions.Add(b, Insert(coin), b+coin)
		}
	}
	for item, price := range prices {
		if price > MaxBalance {
			continue
		}
		vend := Vend(item)
		for b := price; b <= MaxBalance; b++ {
			m.Transitions.Add(b, vend, b-price)
		}
	}
	return m
}
