package converter

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vkravets/budget-cloud/internal/logger"
)

// RateProvider fetches a full rate snapshot relative to the given base
// currency. Implementations may layer caches in front of the network.
type RateProvider interface {
	FetchRates(ctx context.Context, base string) (map[string]float64, error)
}

// Converter owns the exchange-rate table and performs pivot conversions
// through the base currency. It always has a usable table: it starts
// from a fallback and a failed refresh leaves the previous table
// untouched. Reads and table replacement may interleave freely.
type Converter struct {
	base     string
	provider RateProvider
	codes    []string // fixed code set consumed from provider snapshots

	mu     sync.RWMutex
	table  Table
	issued uint64 // refresh sequence, newest issued request wins
}

// New builds a converter around an initial table. The initial table's
// code set also defines which codes later snapshots must carry; anything
// else in a provider response is ignored. provider may be nil for a
// converter that only ever uses the initial table.
func New(base string, initial Table, provider RateProvider) (*Converter, error) {
	table, err := NewTable(base, initial)
	if err != nil {
		return nil, err
	}
	codes := table.Codes()
	sort.Strings(codes)
	return &Converter{
		base:     base,
		provider: provider,
		codes:    codes,
		table:    table,
	}, nil
}

// Base returns the pivot currency code.
func (c *Converter) Base() string {
	return c.base
}

// Rates returns a snapshot copy of the current table.
func (c *Converter) Rates() Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.table.clone()
}

// Convert computes amount expressed in from as a value in to, pivoting
// through the base currency. Converting a currency to itself returns
// amount unchanged, exactly, whether or not the code is known. A code
// missing from the table yields ErrNotConvertible.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	fromRate, ok := c.table[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotConvertible, from)
	}
	toRate, ok := c.table[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotConvertible, to)
	}
	return amount / fromRate * toRate, nil
}

// Refresh fetches a fresh snapshot and replaces the whole table in one
// step. Any failure leaves the current table untouched and comes back as
// a recoverable error. When refreshes overlap, the most recently issued
// request wins: a response belonging to an older request is discarded
// even if it arrives last.
func (c *Converter) Refresh(ctx context.Context) error {
	if c.provider == nil {
		return fmt.Errorf("no rate provider configured")
	}

	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	raw, err := c.provider.FetchRates(ctx, c.base)
	if err != nil {
		return fmt.Errorf("fetch rates: %w", err)
	}

	picked := make(map[string]float64, len(c.codes))
	for _, code := range c.codes {
		rate, ok := raw[code]
		if !ok {
			return fmt.Errorf("rate snapshot missing %s", code)
		}
		picked[code] = rate
	}

	table, err := NewTable(c.base, picked)
	if err != nil {
		return fmt.Errorf("rate snapshot rejected: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.issued {
		logger.Log.Debugw("discarding stale rate refresh", "seq", seq, "issued", c.issued)
		return nil
	}
	c.table = table
	return nil
}
