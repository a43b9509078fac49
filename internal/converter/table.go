package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConvertible is returned when a requested currency is absent
	// from the rate table. It is a normal result, not a fault.
	ErrNotConvertible = errors.New("currency not convertible")

	// ErrInvalidRate is returned when a snapshot carries a non-positive
	// rate or a base rate different from 1. Bad snapshots are rejected
	// at load time instead of producing undefined conversions later.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// Table maps currency codes to rates expressed relative to one base
// currency. The base currency's own rate is always exactly 1.
type Table map[string]float64

// NewTable validates a raw rate mapping and returns it as a Table.
// Every rate must be strictly positive and the base rate must be 1.
func NewTable(base string, rates map[string]float64) (Table, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: empty rate table", ErrInvalidRate)
	}
	baseRate, ok := rates[base]
	if !ok {
		return nil, fmt.Errorf("%w: base currency %s missing", ErrInvalidRate, base)
	}
	if baseRate != 1 {
		return nil, fmt.Errorf("%w: base currency %s has rate %v, want 1", ErrInvalidRate, base, baseRate)
	}
	t := make(Table, len(rates))
	for code, rate := range rates {
		if rate <= 0 {
			return nil, fmt.Errorf("%w: %s has non-positive rate %v", ErrInvalidRate, code, rate)
		}
		t[code] = rate
	}
	return t, nil
}

// Codes returns the currency codes present in the table.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	return codes
}

// clone returns an independent copy so callers never observe a table
// that is being replaced.
func (t Table) clone() Table {
	c := make(Table, len(t))
	for code, rate := range t {
		c[code] = rate
	}
	return c
}

// BaseCurrency is the pivot all fallback rates are expressed against.
const BaseCurrency = "USD"

// DefaultTable returns the hardcoded fallback rates the converter starts
// with. The converter never runs without a table: a failed refresh keeps
// whatever table was last known good, which is at worst this one.
func DefaultTable() Table {
	return Table{
		"USD": 1,
		"CAD": 1.35,
		"EUR": 0.91,
		"GBP": 0.78,
		"UAH": 41.5,
	}
}
