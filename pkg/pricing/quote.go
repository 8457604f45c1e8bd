package pricing

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/mathutil"
	"github.com/iwvelando/solar-quote/pkg/sizing"
	"github.com/shopspring/decimal"
)

// Category groups quote items for display.
type Category string

// Quote item categories.
const (
	Panels     Category = "panels"
	Inverters  Category = "inverters"
	Batteries  Category = "batteries"
	Structure  Category = "structure"
	Wiring     Category = "wiring"
	Protection Category = "protection"
	Labor      Category = "labor"
)

// Categories lists every category in display order. Derived quotes never use
// Wiring; operators may recategorize a line into it with an Override.
var Categories = []Category{Panels, Inverters, Batteries, Structure, Wiring, Protection, Labor}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Stable item identifiers.
const (
	PanelItemID     = "p1"
	InverterItemID  = "i1"
	BatteryItemID   = "b1"
	StructureItemID = "a1"
	WiringItemID    = "c1"
	LaborItemID     = "m1"
)

// QuoteItem is one priced line. UnitPrice is in whole currency units.
type QuoteItem struct {
	ID          string   `json:"id" yaml:"id"`
	Description string   `json:"description" yaml:"description"`
	Quantity    int      `json:"quantity" yaml:"quantity"`
	UnitPrice   int64    `json:"unitPrice" yaml:"unitPrice"`
	Category    Category `json:"category" yaml:"category"`
}

// LineTotal is quantity times unit price.
func (q QuoteItem) LineTotal() int64 {
	return int64(q.Quantity) * q.UnitPrice
}

// Quote is a priced bill of materials with its totals.
type Quote struct {
	InverterPowerWatts int         `json:"inverterPowerWatts"`
	Items              []QuoteItem `json:"items"`
	Subtotal           int64       `json:"subtotal"`
	Tax                int64       `json:"tax"`
	Total              int64       `json:"total"`
}

// BatteryUnitPrice is the price of the battery bank for a chemistry.
func BatteryUnitPrice(chemistry sizing.Chemistry) int64 {
	if chemistry == sizing.Lithium {
		return constants.LithiumBatteryUnitPrice
	}
	return constants.StandardBatteryUnitPrice
}

// GenerateItems derives the quote lines for a sized system in their fixed
// order: panels, inverter, battery, structure, wiring and protection, labor.
func GenerateItems(result sizing.Result, inputs sizing.SystemInputs) []QuoteItem {
	tier := SuggestedInverterPower(result.InverterSizeWatts)

	return []QuoteItem{
		{
			ID:          PanelItemID,
			Description: fmt.Sprintf("Solar Panel %dW Mono PERC", inputs.PanelWattage),
			Quantity:    result.NumberOfPanels,
			UnitPrice:   constants.PanelUnitPrice,
			Category:    Panels,
		},
		{
			ID:          InverterItemID,
			Description: fmt.Sprintf("Inverter %s %dW", strings.ToUpper(string(inputs.InverterTopology)), tier),
			Quantity:    1,
			UnitPrice:   InverterUnitPrice(tier),
			Category:    Inverters,
		},
		{
			ID: BatteryItemID,
			Description: fmt.Sprintf("Battery %s %dV %dAh", strings.ToUpper(string(inputs.BatteryChemistry)),
				inputs.SystemVoltage, mathutil.RoundWhole(result.BatteryCapacityAh)),
			Quantity:  1,
			UnitPrice: BatteryUnitPrice(inputs.BatteryChemistry),
			Category:  Batteries,
		},
		{
			ID:          StructureItemID,
			Description: "Mounting Structure (Rack)",
			Quantity:    result.NumberOfPanels,
			UnitPrice:   constants.StructureUnitPrice,
			Category:    Structure,
		},
		{
			ID:          WiringItemID,
			Description: "AC/DC Wiring and Protection",
			Quantity:    1,
			UnitPrice:   constants.WiringProtectionUnitPrice,
			Category:    Protection,
		},
		{
			ID:          LaborItemID,
			Description: "Labor and Installation",
			Quantity:    1,
			UnitPrice:   constants.LaborUnitPrice,
			Category:    Labor,
		},
	}
}

// Subtotal sums quantity times unit price across items.
func Subtotal(items []QuoteItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// Tax is the VAT on a subtotal, rounded half-up to whole currency units.
func Tax(subtotal int64) int64 {
	rate := decimal.RequireFromString(constants.TaxRate)
	return decimal.NewFromInt(subtotal).Mul(rate).Round(0).IntPart()
}

// TaxInclusiveTotal is the subtotal plus Tax, which equals subtotal*1.19
// rounded half-up.
func TaxInclusiveTotal(subtotal int64) int64 {
	return subtotal + Tax(subtotal)
}

// NewQuote prices the given items.
func NewQuote(inverterPowerWatts int, items []QuoteItem) Quote {
	subtotal := Subtotal(items)
	tax := Tax(subtotal)
	return Quote{
		InverterPowerWatts: inverterPowerWatts,
		Items:              items,
		Subtotal:           subtotal,
		Tax:                tax,
		Total:              subtotal + tax,
	}
}

// Build generates the quote for a sized system and applies operator
// overrides to the derived lines.
func Build(result sizing.Result, inputs sizing.SystemInputs, overrides []Override) (Quote, error) {
	items, err := ApplyOverrides(GenerateItems(result, inputs), overrides)
	if err != nil {
		return Quote{}, err
	}
	return NewQuote(SuggestedInverterPower(result.InverterSizeWatts), items), nil
}
