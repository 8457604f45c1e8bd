package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/iwvelando/solar-quote/pkg/mathutil"
	"github.com/iwvelando/solar-quote/pkg/sizing"
)

// Summary is an offline advisor that describes the sized system in plain
// text. Its output depends only on the request.
type Summary struct{}

// Advise implements Advisor.
func (Summary) Advise(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	in, res := req.Inputs, req.Sizing

	var b strings.Builder
	fmt.Fprintf(&b, "The array of %d x %dW panels (%.2f kWp) should yield about %.0f kWh per month against a demand of %.0f kWh.",
		res.NumberOfPanels, in.PanelWattage, res.ArrayPowerKwp(in.PanelWattage), res.MonthlyProductionKwh, in.MonthlyConsumption)

	switch {
	case mathutil.IsZero(res.BatteryCapacityAh):
		b.WriteString(" No battery bank is sized; the system relies on the grid after sunset.")
	default:
		fmt.Fprintf(&b, " A %dV %s bank of %d Ah covers %.1f day(s) of autonomy at %d%% depth of discharge.",
			in.SystemVoltage, in.BatteryChemistry, mathutil.RoundWhole(res.BatteryCapacityAh),
			in.AutonomyDays, mathutil.Percent(in.DepthOfDischarge))
	}

	if mathutil.IsZero(in.PeakLoadWatts) {
		b.WriteString(" Record the simultaneous peak load so the inverter can be sized.")
	} else {
		fmt.Fprintf(&b, " The inverter must handle at least %.0f W including start-up surges.", res.InverterSizeWatts)
	}

	switch in.InverterTopology {
	case sizing.OnGrid:
		b.WriteString(" Confirm net-metering approval with the utility before installation.")
	case sizing.OffGrid:
		b.WriteString(" Plan a generator or load shedding for long cloudy spells.")
	case sizing.Hybrid:
		b.WriteString(" Prioritize critical loads on the backup output.")
	}
	return b.String(), nil
}
