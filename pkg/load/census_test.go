package load

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/solar-quote/pkg/mathutil"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name          string
		appliances    []Appliance
		expectPeak    float64
		expectDaily   float64
		expectMonthly float64
	}{
		{
			name:          "Empty census",
			appliances:    nil,
			expectPeak:    0,
			expectDaily:   0,
			expectMonthly: 0,
		},
		{
			name:          "Starter census",
			appliances:    StarterCensus(),
			expectPeak:    150 + 80 + 45,
			expectDaily:   3600 + 400 + 270,
			expectMonthly: 128.1,
		},
		{
			name: "Quantities multiply power",
			appliances: []Appliance{
				{Name: "Fan", Power: 60, Hours: 8, Quantity: 2},
				{Name: "Air Fryer", Power: 1500, Hours: 0.5, Quantity: 1},
			},
			expectPeak:    1620,
			expectDaily:   1710,
			expectMonthly: 51.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.appliances)
			if !mathutil.WithinTolerance(summary.PeakWatts, tt.expectPeak, 1e-9) {
				t.Errorf("PeakWatts = %v, expected %v", summary.PeakWatts, tt.expectPeak)
			}
			if !mathutil.WithinTolerance(summary.DailyWh, tt.expectDaily, 1e-9) {
				t.Errorf("DailyWh = %v, expected %v", summary.DailyWh, tt.expectDaily)
			}
			if !mathutil.WithinTolerance(summary.MonthlyKwh, tt.expectMonthly, 1e-9) {
				t.Errorf("MonthlyKwh = %v, expected %v", summary.MonthlyKwh, tt.expectMonthly)
			}
			if summary.Appliances != len(tt.appliances) {
				t.Errorf("Appliances = %d, expected %d", summary.Appliances, len(tt.appliances))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		appliance   Appliance
		expectError bool
	}{
		{"Valid", Appliance{Name: "Fan", Power: 60, Hours: 8, Quantity: 2}, false},
		{"Missing name", Appliance{Power: 60, Hours: 8, Quantity: 1}, true},
		{"Negative power", Appliance{Name: "Fan", Power: -1, Hours: 8, Quantity: 1}, true},
		{"More than a day", Appliance{Name: "Fan", Power: 60, Hours: 25, Quantity: 1}, true},
		{"Zero quantity", Appliance{Name: "Fan", Power: 60, Hours: 8, Quantity: 0}, true},
		{"Infinite power", Appliance{Name: "Fan", Power: math.Inf(1), Hours: 8, Quantity: 1}, true},
		{"NaN hours", Appliance{Name: "Fan", Power: 60, Hours: math.NaN(), Quantity: 1}, true},
		{"Power beyond range", Appliance{Name: "Kiln", Power: 2e6, Hours: 1, Quantity: 1}, true},
		{"Quantity beyond range", Appliance{Name: "Bulb", Power: 9, Hours: 5, Quantity: 20000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]Appliance{tt.appliance})
			if tt.expectError {
				if !errors.Is(err, ErrInvalidAppliance) {
					t.Errorf("Validate() error = %v, expected ErrInvalidAppliance", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestPresetsAreValidAndCopied(t *testing.T) {
	list := Presets()
	if len(list) != 14 {
		t.Fatalf("expected 14 presets, got %d", len(list))
	}
	if err := Validate(list); err != nil {
		t.Errorf("presets failed validation: %v", err)
	}

	list[0].Power = 1
	if Presets()[0].Power == 1 {
		t.Error("Presets exposed the shared preset table")
	}
}
