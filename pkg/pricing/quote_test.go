package pricing

import (
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/solar-quote/pkg/sizing"
	"github.com/shopspring/decimal"
)

func goldenInputs() sizing.SystemInputs {
	return sizing.SystemInputs{
		MonthlyConsumption: 350,
		PeakSunHours:       4.5,
		PanelWattage:       450,
		SystemVoltage:      24,
		AutonomyDays:       1,
		DepthOfDischarge:   0.8,
		SystemEfficiency:   0.8,
		InverterTopology:   sizing.Hybrid,
		BatteryChemistry:   sizing.Lithium,
	}
}

func TestGenerateItemsGolden(t *testing.T) {
	inputs := goldenInputs()
	items := GenerateItems(sizing.Size(inputs), inputs)

	expected := []QuoteItem{
		{ID: "p1", Description: "Solar Panel 450W Mono PERC", Quantity: 10, UnitPrice: 520000, Category: Panels},
		{ID: "i1", Description: "Inverter HYBRID 1000W", Quantity: 1, UnitPrice: 2550000, Category: Inverters},
		{ID: "b1", Description: "Battery LITHIUM 24V 760Ah", Quantity: 1, UnitPrice: 5250000, Category: Batteries},
		{ID: "a1", Description: "Mounting Structure (Rack)", Quantity: 10, UnitPrice: 135000, Category: Structure},
		{ID: "c1", Description: "AC/DC Wiring and Protection", Quantity: 1, UnitPrice: 850000, Category: Protection},
		{ID: "m1", Description: "Labor and Installation", Quantity: 1, UnitPrice: 1500000, Category: Labor},
	}

	if len(items) != len(expected) {
		t.Fatalf("expected %d items, got %d", len(expected), len(items))
	}
	for i := range expected {
		if items[i] != expected[i] {
			t.Errorf("item %d = %+v, expected %+v", i, items[i], expected[i])
		}
	}
}

func TestGenerateItemsPriceRules(t *testing.T) {
	tests := []struct {
		name            string
		peakLoad        float64
		chemistry       sizing.Chemistry
		topology        sizing.Topology
		expectInverter  string
		expectInvPrice  int64
		expectBattery   string
		expectBattPrice int64
	}{
		{
			name:            "Large inverter tier and gel bank",
			peakLoad:        3200,
			chemistry:       sizing.Gel,
			topology:        sizing.OffGrid,
			expectInverter:  "Inverter OFF-GRID 5000W",
			expectInvPrice:  5100000,
			expectBattery:   "Battery GEL 24V",
			expectBattPrice: 1180000,
		},
		{
			name:            "Lead-acid uses the standard battery price",
			peakLoad:        1600,
			chemistry:       sizing.LeadAcid,
			topology:        sizing.Hybrid,
			expectInverter:  "Inverter HYBRID 2000W",
			expectInvPrice:  2550000,
			expectBattery:   "Battery LEAD-ACID 24V",
			expectBattPrice: 1180000,
		},
		{
			name:            "Tier exactly at threshold keeps small price",
			peakLoad:        2400,
			chemistry:       sizing.Lithium,
			topology:        sizing.OnGrid,
			expectInverter:  "Inverter ON-GRID 3000W",
			expectInvPrice:  2550000,
			expectBattery:   "Battery LITHIUM 24V",
			expectBattPrice: 5250000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := sizing.ApplyChemistryDefaults(goldenInputs(), tt.chemistry)
			inputs.InverterTopology = tt.topology
			inputs.PeakLoadWatts = tt.peakLoad
			items := GenerateItems(sizing.Size(inputs), inputs)

			inverter := items[1]
			if inverter.Description != tt.expectInverter || inverter.UnitPrice != tt.expectInvPrice {
				t.Errorf("inverter = %q @ %d, expected %q @ %d", inverter.Description, inverter.UnitPrice, tt.expectInverter, tt.expectInvPrice)
			}
			battery := items[2]
			if !strings.HasPrefix(battery.Description, tt.expectBattery) || battery.UnitPrice != tt.expectBattPrice {
				t.Errorf("battery = %q @ %d, expected prefix %q @ %d", battery.Description, battery.UnitPrice, tt.expectBattery, tt.expectBattPrice)
			}
		})
	}
}

func TestQuoteTotals(t *testing.T) {
	inputs := goldenInputs()
	quote, err := Build(sizing.Size(inputs), inputs, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if quote.InverterPowerWatts != 1000 {
		t.Errorf("InverterPowerWatts = %d, expected 1000", quote.InverterPowerWatts)
	}
	if quote.Subtotal != 16700000 {
		t.Errorf("Subtotal = %d, expected 16700000", quote.Subtotal)
	}
	if quote.Tax != 3173000 {
		t.Errorf("Tax = %d, expected 3173000", quote.Tax)
	}
	if quote.Total != 19873000 {
		t.Errorf("Total = %d, expected 19873000", quote.Total)
	}
}

// Totals are rounded half-up to whole currency units.
func TestTaxInclusiveTotalRounding(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		tax      int64
		total    int64
	}{
		{"Exact", 100, 19, 119},
		{"9.5 rounds up", 50, 10, 60},
		{"1.9 rounds up", 10, 2, 12},
		{"2.28 rounds down", 12, 2, 14},
		{"Zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tax(tt.subtotal); got != tt.tax {
				t.Errorf("Tax(%d) = %d, expected %d", tt.subtotal, got, tt.tax)
			}
			if got := TaxInclusiveTotal(tt.subtotal); got != tt.total {
				t.Errorf("TaxInclusiveTotal(%d) = %d, expected %d", tt.subtotal, got, tt.total)
			}
		})
	}
}

func TestQuoteTotalEqualsSubtotalTimesRate(t *testing.T) {
	multiplier := decimal.RequireFromString("1.19")
	for panels := 0; panels <= 40; panels++ {
		items := GenerateItems(sizing.Result{NumberOfPanels: panels, InverterSizeWatts: float64(panels) * 310}, goldenInputs())
		quote := NewQuote(1000, items)

		var sum int64
		for _, item := range quote.Items {
			sum += int64(item.Quantity) * item.UnitPrice
		}
		want := decimal.NewFromInt(sum).Mul(multiplier).Round(0).IntPart()
		if quote.Total != want {
			t.Fatalf("%d panels: Total = %d, expected %d", panels, quote.Total, want)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	inputs := goldenInputs()
	derived := GenerateItems(sizing.Size(inputs), inputs)

	price := int64(3000000)
	qty := 2
	desc := "Inverter HYBRID 1000W (customer supplied brand)"
	items, err := ApplyOverrides(derived, []Override{
		{ID: InverterItemID, UnitPrice: &price, Description: &desc},
		{ID: LaborItemID, Quantity: &qty},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}

	if items[1].UnitPrice != 3000000 || items[1].Description != desc {
		t.Errorf("inverter override not applied: %+v", items[1])
	}
	if items[5].Quantity != 2 {
		t.Errorf("labor quantity = %d, expected 2", items[5].Quantity)
	}
	if derived[1].UnitPrice != 2550000 || derived[5].Quantity != 1 {
		t.Error("ApplyOverrides mutated the derived items")
	}
}

func TestApplyOverridesErrors(t *testing.T) {
	inputs := goldenInputs()
	derived := GenerateItems(sizing.Size(inputs), inputs)
	negativeQty := -1
	negativePrice := int64(-5)
	bogusCategory := Category("misc")

	tests := []struct {
		name     string
		override Override
		expected error
	}{
		{"Unknown id", Override{ID: "zz"}, ErrUnknownItem},
		{"Negative quantity", Override{ID: PanelItemID, Quantity: &negativeQty}, ErrInvalidOverride},
		{"Negative price", Override{ID: PanelItemID, UnitPrice: &negativePrice}, ErrInvalidOverride},
		{"Unknown category", Override{ID: WiringItemID, Category: &bogusCategory}, ErrInvalidOverride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyOverrides(derived, []Override{tt.override})
			if !errors.Is(err, tt.expected) {
				t.Errorf("ApplyOverrides() error = %v, expected %v", err, tt.expected)
			}
			if _, buildErr := Build(sizing.Size(inputs), inputs, []Override{tt.override}); !errors.Is(buildErr, tt.expected) {
				t.Errorf("Build() error = %v, expected %v", buildErr, tt.expected)
			}
		})
	}
}

func TestApplyOverridesRecategorizesWiring(t *testing.T) {
	inputs := goldenInputs()
	derived := GenerateItems(sizing.Size(inputs), inputs)
	wiring := Wiring

	items, err := ApplyOverrides(derived, []Override{{ID: WiringItemID, Category: &wiring}})
	if err != nil {
		t.Fatalf("ApplyOverrides() error = %v", err)
	}
	if items[4].Category != Wiring {
		t.Errorf("category = %q, expected %q", items[4].Category, Wiring)
	}
	if derived[4].Category != Protection {
		t.Errorf("derived wiring line category = %q, expected %q", derived[4].Category, Protection)
	}
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("category %q reported invalid", c)
		}
	}
}
