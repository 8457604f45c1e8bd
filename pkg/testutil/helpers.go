// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/solar-quote/pkg/analysis"
	"github.com/iwvelando/solar-quote/pkg/pricing"
)

// FindItem finds a quote item by id.
// Returns a pointer to the item if found, nil otherwise.
func FindItem(items []pricing.QuoteItem, id string) *pricing.QuoteItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// FindInverter finds a catalog inverter by model name.
func FindInverter(options []analysis.InverterOption, model string) *analysis.InverterOption {
	for i := range options {
		if options[i].Model == model {
			return &options[i]
		}
	}
	return nil
}
