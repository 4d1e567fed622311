// Package catalog provides the price catalog fed to vending.Create,
// with YAML decoding, validation and environment configuration.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	vending "github.com/Azure/go-vending"
)

var (
	ErrEmptyItem    = errors.New("item id should not be empty")
	ErrInvalidPrice = errors.New("price is not a multiple of the smallest coin")
)

// Catalog maps item id to price.
type Catalog map[string]vending.Cents

// Items returns item ids in lexical order.
func (c Catalog) Items() []string {
	items := make([]string, 0, len(c))
	for item := range c {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Vendable returns items that can be paid with at most max cents.
func (c Catalog) Vendable(max vending.Cents) Catalog {
	rv := make(Catalog)
	for item, price := range c {
		if price <= max {
			rv[item] = price
		}
	}
	return rv
}

// ErrUnvendable lists items priced above what the machine can hold.
type ErrUnvendable map[string]vending.Cents

func (e ErrUnvendable) Error() string {
	var builder strings.Builder
	builder.WriteString("Unvendable Items:")
	for _, item := range Catalog(e).Items() {
		builder.WriteString(fmt.Sprintf("\n%s [%d > %d]", item, e[item], vending.MaxBalance))
	}
	return builder.String()
}

// Validate checks every item can be vended by a machine holding at most max cents.
//
// Prices above max are reported together in ErrUnvendable;
// empty ids and prices not payable with the accepted coins are reported as well.
func (c Catalog) Validate(max vending.Cents) error {
	smallest := vending.Denominations()[0]
	var errs []error
	unvendable := make(ErrUnvendable)
	for _, item := range c.Items() {
		price := c[item]
		if strings.TrimSpace(item) == "" {
			errs = append(errs, ErrEmptyItem)
			continue
		}
		if price > max {
			unvendable[item] = price
			continue
		}
		if price%smallest != 0 {
			errs = append(errs, fmt.Errorf("%w: %s costs %d", ErrInvalidPrice, item, price))
		}
	}
	if len(unvendable) > 0 {
		errs = append(errs, unvendable)
	}
	return errors.Join(errs...)
}
