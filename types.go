package vending

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is an amount of money in cents.
//
// As a state of the vending machine, Cents is the balance currently held in one transaction.
type Cents uint32

// MaxBalance is the maximum amount of money the machine can hold.
const MaxBalance Cents = 500

// denominations are the accepted coins, in ascending order.
var denominations = [...]Cents{5, 10, 25}

// Denominations returns the accepted coin values, in ascending order.
func Denominations() []Cents {
	rv := make([]Cents, len(denominations))
	copy(rv, denominations[:])
	return rv
}

// IsDenomination returns true if c is an accepted coin.
func IsDenomination(c Cents) bool {
	for _, d := range denominations {
		if d == c {
			return true
		}
	}
	return false
}

// InRange returns true if c is a balance the machine can hold.
func (c Cents) InRange() bool { return c <= MaxBalance }

func (c Cents) String() string { return fmt.Sprintf("%d.%02d", c/100, c%100) }

// ActionKind tags the variant of an Action.
type ActionKind uint8

const (
	ActionInsert ActionKind = iota + 1
	ActionVend
)

func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionVend:
		return "vend"
	default:
		return "unknown"
	}
}

// Action is a customer action: insert a coin, or vend an item.
//
// Action is comparable, two Actions are equal when they have the same kind and payload.
//
//	Insert(25) == Insert(25)
//	Vend("soda") != Vend("chips")
type Action struct {
	Kind ActionKind
	Coin Cents  // set for ActionInsert
	Item string // set for ActionVend
}

// Insert constructs an action inserting coin into the machine.
//
// Insert does not check the coin, the machine has no transition for unaccepted coins.
func Insert(coin Cents) Action { return Action{Kind: ActionInsert, Coin: coin} }

// Vend constructs an action dispensing item from the machine.
func Vend(item string) Action { return Action{Kind: ActionVend, Item: item} }

func (a Action) String() string {
	switch a.Kind {
	case ActionInsert:
		return fmt.Sprintf("insert(%d)", a.Coin)
	case ActionVend:
		return fmt.Sprintf("vend(%s)", a.Item)
	default:
		return "unknown()"
	}
}

// MarshalText encodes the action as "insert 25" or "vend soda".
func (a Action) MarshalText() ([]byte, error) {
	switch a.Kind {
	case ActionInsert:
		return []byte("insert " + strconv.FormatUint(uint64(a.Coin), 10)), nil
	case ActionVend:
		if strings.TrimSpace(a.Item) == "" {
			return nil, ErrParseAction{Input: a.String(), Reason: "missing argument"}
		}
		return []byte("vend " + a.Item), nil
	default:
		return nil, ErrParseAction{Input: a.String(), Reason: "unknown action kind"}
	}
}

// UnmarshalText is the reverse of MarshalText, check ParseAction for accepted forms.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction parses one action from text. Accepted forms:
//
//	insert 25
//	insert(25)
//	vend soda
//	vend(soda)
//
// The verb is case-insensitive, the item is kept as is.
// Inserting a coin that is not an accepted denomination is an error.
func ParseAction(s string) (Action, error) {
	text := strings.TrimSpace(s)
	var verb, arg string
	if open := strings.IndexByte(text, '('); open > 0 && strings.HasSuffix(text, ")") &&
		!strings.ContainsAny(text[:open], " \t") {
		verb, arg = text[:open], text[open+1:len(text)-1]
	} else {
		verb, arg, _ = strings.Cut(text, " ")
	}
	verb, arg = strings.TrimSpace(verb), strings.TrimSpace(arg)
	if arg == "" {
		return Action{}, ErrParseAction{Input: s, Reason: "missing argument"}
	}
	switch strings.ToLower(verb) {
	case ActionInsert.String():
		coin, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return Action{}, ErrParseAction{Input: s, Reason: "coin is not a number", Err: err}
		}
		if !IsDenomination(Cents(coin)) {
			return Action{}, ErrParseAction{Input: s, Reason: fmt.Sprintf("coin %d is not accepted", coin)}
		}
		return Insert(Cents(coin)), nil
	case ActionVend.String():
		return Vend(arg), nil
	default:
		return Action{}, ErrParseAction{Input: s, Reason: fmt.Sprintf("unknown action %q", verb)}
	}
}

// ParseActions parses each line with ParseAction, blank lines are skipped.
func ParseActions(lines []string) ([]Action, error) {
	actions := make([]Action, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := ParseAction(line)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
