package validation

import (
	"fmt"
	"slices"

	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/mathutil"
	"github.com/iwvelando/solar-quote/pkg/sizing"
)

// ValidatePanelWattage warns when the module rating is not one the catalog carries.
func ValidatePanelWattage(watts int) string {
	if slices.Contains(constants.StandardPanelWattages, watts) {
		return ""
	}
	return fmt.Sprintf("Panel wattage %dW is not a standard rating %v - pricing assumes a standard module", watts, constants.StandardPanelWattages)
}

// ValidateSystemVoltage warns on a non-standard DC bus voltage.
func ValidateSystemVoltage(volts int) string {
	if slices.Contains(constants.StandardSystemVoltages, volts) {
		return ""
	}
	return fmt.Sprintf("System voltage %dV is not a standard bus voltage %v", volts, constants.StandardSystemVoltages)
}

// ValidateAutonomy checks that the autonomy days agree with the topology's
// need for batteries.
func ValidateAutonomy(topology sizing.Topology, days float64) string {
	switch {
	case topology == sizing.OnGrid && days > 0:
		return fmt.Sprintf("On-grid systems have no battery bank but autonomy is %.1f day(s) - set autonomyDays to 0", days)
	case topology != sizing.OnGrid && mathutil.IsZero(days):
		return fmt.Sprintf("Topology %s needs batteries but autonomy is 0 days - no bank will be sized", topology)
	}
	return ""
}

// ValidateDepthOfDischarge warns when the depth of discharge exceeds what the
// chemistry tolerates.
func ValidateDepthOfDischarge(chemistry sizing.Chemistry, dod float64) string {
	limit := chemistry.DefaultDepthOfDischarge()
	if dod > limit+constants.FloatTolerance {
		return fmt.Sprintf("Depth of discharge %d%% exceeds the %d%% recommended for %s batteries - expect reduced cycle life",
			mathutil.Percent(dod), mathutil.Percent(limit), chemistry)
	}
	return ""
}

// ValidatePeakLoad warns when no simultaneous peak load was recorded, which
// leaves the inverter unsized.
func ValidatePeakLoad(watts float64) string {
	if mathutil.IsZero(watts) {
		return "Peak load is 0W - the inverter will default to the smallest tier"
	}
	return ""
}

// InputWarnings runs every input check and returns the non-empty warnings.
func InputWarnings(inputs sizing.SystemInputs) []string {
	checks := []string{
		ValidatePanelWattage(inputs.PanelWattage),
		ValidateSystemVoltage(inputs.SystemVoltage),
		ValidateAutonomy(inputs.InverterTopology, inputs.AutonomyDays),
		ValidateDepthOfDischarge(inputs.BatteryChemistry, inputs.DepthOfDischarge),
		ValidatePeakLoad(inputs.PeakLoadWatts),
	}

	var warnings []string
	for _, w := range checks {
		if w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}
