package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Mode determines whether a purchase grants perpetual or periodic access.
type Mode string

const (
	// ModeOneTime is a single purchase with perpetual access.
	ModeOneTime Mode = "one_time"
	// ModeRecurring is a periodic subscription; renewal and expiry
	// fields on entitlement records are meaningful only for this mode.
	ModeRecurring Mode = "recurring"
)

// Valid reports whether the mode is one of the known purchase modes.
func (m Mode) Valid() bool {
	return m == ModeOneTime || m == ModeRecurring
}

// Entry describes a purchasable offering exposed to the user.
// PriceID is assigned by the external payment processor and serves as the
// join key to entitlement records.
type Entry struct {
	PriceID     string `yaml:"price_id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Mode        Mode   `yaml:"mode"`
	Price       Money  `yaml:"price"`
}

// Catalog is a static, ordered collection of entries.
// It is immutable after construction; price IDs are guaranteed unique.
type Catalog struct {
	entries []Entry
	byPrice map[string]int
}

// New builds a catalog from the given entries.
// Entries keep their order. Construction fails on empty or duplicate price
// IDs and on unknown purchase modes so that misconfiguration is caught at
// startup rather than at checkout time.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: slices.Clone(entries),
		byPrice: make(map[string]int, len(entries)),
	}

	for i, e := range c.entries {
		if e.PriceID == "" {
			return nil, errors.Join(ErrInvalidEntry, fmt.Errorf("entry %d has empty price ID", i))
		}
		if !e.Mode.Valid() {
			return nil, errors.Join(ErrInvalidEntry, fmt.Errorf("entry %q has unknown mode %q", e.PriceID, e.Mode))
		}
		if _, exists := c.byPrice[e.PriceID]; exists {
			return nil, errors.Join(ErrDuplicatePriceID, fmt.Errorf("price ID %q", e.PriceID))
		}
		c.byPrice[e.PriceID] = i
	}

	return c, nil
}

// NewFromSource loads entries from the given source and builds a catalog.
func NewFromSource(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("catalog: source is required")
	}

	entries, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	return New(entries...)
}

// Find returns the entry with the given price ID.
func (c *Catalog) Find(priceID string) (Entry, bool) {
	i, ok := c.byPrice[priceID]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns the catalog entries in their original order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
