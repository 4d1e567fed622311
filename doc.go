// Package vending models a coin-operated vending machine as a Finite-State-Machine.
//
// The state of the machine is its balance, in cents, from 0 to MaxBalance.
// Customers act on it by inserting accepted coins (5, 10 and 25 cents) or vending items.
//
//	m := vending.Create(map[string]vending.Cents{"soda": 75})
//	balance, err := vending.Evaluate(m, []vending.Action{
//		vending.Insert(25), vending.Insert(25), vending.Insert(25),
//		vending.Vend("soda"),
//	})
//
// The Fsm built by Create is never modified afterwards,
// it can be evaluated by any number of goroutines at the same time.
package vending
