package vending

// MakeChange pays amount back greedily, largest coins first.
//
//	MakeChange(45) // [25, 10, 10]
//
// Amounts that are not a multiple of the smallest coin leave a remainder,
// which is silently dropped. Use ExactChange to detect it.
func MakeChange(amount Cents) []Cents {
	coins, _ := makeChange(amount)
	return coins
}

// ExactChange is MakeChange, but reports ErrUnrepresentableChange if a remainder is left.
func ExactChange(amount Cents) ([]Cents, error) {
	coins, remainder := makeChange(amount)
	if remainder > 0 {
		return nil, ErrUnrepresentableChange{Amount: amount, Remainder: remainder}
	}
	return coins, nil
}

func makeChange(amount Cents) (coins []Cents, remainder Cents) {
	remainder = amount
	for i := len(denominations) - 1; i >= 0; i-- {
		coin := denominations[i]
		for n := remainder / coin; n > 0; n-- {
			coins = append(coins, coin)
		}
		remainder %= coin
	}
	return coins, remainder
}

// TotalValue sums the coins.
func TotalValue(coins []Cents) Cents {
	var total Cents
	for _, c := range coins {
		total += c
	}
	return total
}
