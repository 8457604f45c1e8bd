package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownItem is returned when an override names an item that the
	// quote does not contain.
	ErrUnknownItem = errors.New("unknown quote item")
	// ErrInvalidOverride is returned for negative quantities or prices.
	ErrInvalidOverride = errors.New("invalid quote override")
)

// Override replaces fields of one derived line item before export. Nil fields
// keep the derived value.
type Override struct {
	ID          string    `json:"id" yaml:"id" mapstructure:"id"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Quantity    *int      `json:"quantity,omitempty" yaml:"quantity,omitempty" mapstructure:"quantity"`
	UnitPrice   *int64    `json:"unitPrice,omitempty" yaml:"unitPrice,omitempty" mapstructure:"unitPrice"`
	Category    *Category `json:"category,omitempty" yaml:"category,omitempty" mapstructure:"category"`
}

// ApplyOverrides returns a new item list with overrides applied. The input
// slice is never modified.
func ApplyOverrides(items []QuoteItem, overrides []Override) ([]QuoteItem, error) {
	out := make([]QuoteItem, len(items))
	copy(out, items)

	index := make(map[string]int, len(out))
	for i, item := range out {
		index[item.ID] = i
	}

	for _, o := range overrides {
		i, ok := index[o.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, o.ID)
		}
		if o.Quantity != nil {
			if *o.Quantity < 0 {
				return nil, fmt.Errorf("%w: quantity for %q must not be negative, got %d", ErrInvalidOverride, o.ID, *o.Quantity)
			}
			out[i].Quantity = *o.Quantity
		}
		if o.UnitPrice != nil {
			if *o.UnitPrice < 0 {
				return nil, fmt.Errorf("%w: unit price for %q must not be negative, got %d", ErrInvalidOverride, o.ID, *o.UnitPrice)
			}
			out[i].UnitPrice = *o.UnitPrice
		}
		if o.Category != nil {
			if !o.Category.Valid() {
				return nil, fmt.Errorf("%w: unknown category %q for %q", ErrInvalidOverride, *o.Category, o.ID)
			}
			out[i].Category = *o.Category
		}
		if o.Description != nil && *o.Description != "" {
			out[i].Description = *o.Description
		}
	}
	return out, nil
}
