package sizing

import (
	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/mathutil"
)

// Result is the sized system for one SystemInputs snapshot.
type Result struct {
	NumberOfPanels       int     `json:"numberOfPanels"`
	InverterSizeWatts    float64 `json:"inverterSizeWatts"`
	BatteryCapacityAh    float64 `json:"batteryCapacityAh"`
	MonthlyProductionKwh float64 `json:"monthlyProductionKwh"`
}

// DailyNeedWh is the daily energy the array must deliver, grossed up for
// wiring, inverter and temperature losses.
func DailyNeedWh(inputs SystemInputs) float64 {
	raw := inputs.MonthlyConsumption * constants.WattsPerKilowatt / constants.DaysPerMonth
	return raw / inputs.SystemEfficiency
}

// Size computes the system for inputs. Inputs must satisfy Validate; the
// calculator divides by peak sun hours, panel wattage, system voltage,
// efficiency and depth of discharge.
func Size(inputs SystemInputs) Result {
	dailyNeed := DailyNeedWh(inputs)

	perPanelDailyWh := float64(inputs.PanelWattage) * inputs.PeakSunHours * inputs.SystemEfficiency
	panels := mathutil.CeilCount(dailyNeed / perPanelDailyWh)

	// autonomyDays == 0 sizes no bank, which is how on-grid systems are expressed.
	battery := dailyNeed * inputs.AutonomyDays / (float64(inputs.SystemVoltage) * inputs.DepthOfDischarge)

	return Result{
		NumberOfPanels:       panels,
		InverterSizeWatts:    inputs.PeakLoadWatts * constants.InverterSafetyMargin,
		BatteryCapacityAh:    battery,
		MonthlyProductionKwh: MonthlyProductionKwh(panels, inputs),
	}
}

// MonthlyProductionKwh is the expected energy yield of an array of panels.
func MonthlyProductionKwh(panels int, inputs SystemInputs) float64 {
	return float64(panels) * float64(inputs.PanelWattage) * inputs.PeakSunHours *
		constants.DaysPerMonth * inputs.SystemEfficiency / constants.WattsPerKilowatt
}

// ArrayPowerKwp is the rated DC power of the array.
func (r Result) ArrayPowerKwp(panelWattage int) float64 {
	return float64(r.NumberOfPanels*panelWattage) / constants.WattsPerKilowatt
}
