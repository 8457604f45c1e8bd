// Package sizing converts a household consumption profile and site
// parameters into panel, battery and inverter requirements.
package sizing

import "github.com/iwvelando/solar-quote/pkg/constants"

// Topology is the inverter's grid and battery interaction mode.
type Topology string

// Supported inverter topologies.
const (
	Hybrid  Topology = "hybrid"
	OffGrid Topology = "off-grid"
	OnGrid  Topology = "on-grid"
)

// Topologies lists every topology in display order.
var Topologies = []Topology{Hybrid, OffGrid, OnGrid}

// Chemistry is the battery bank technology.
type Chemistry string

// Supported battery chemistries.
const (
	Lithium  Chemistry = "lithium"
	Gel      Chemistry = "gel"
	LeadAcid Chemistry = "lead-acid"
)

// DefaultDepthOfDischarge returns the usable capacity fraction for a
// chemistry. Unknown chemistries get the most conservative value.
func (c Chemistry) DefaultDepthOfDischarge() float64 {
	switch c {
	case Lithium:
		return constants.LithiumDepthOfDischarge
	case Gel:
		return constants.GelDepthOfDischarge
	default:
		return constants.LeadAcidDepthOfDischarge
	}
}

// SystemInputs holds everything the sizing calculation needs. Values are
// treated as an immutable snapshot per calculation. Upper bounds keep every
// derived count and tier inside int range.
type SystemInputs struct {
	MonthlyConsumption float64   `json:"monthlyConsumption" yaml:"monthlyConsumption" mapstructure:"monthlyConsumption" validate:"finite,gte=0,lte=1000000"`
	PeakSunHours       float64   `json:"peakSunHours" yaml:"peakSunHours" mapstructure:"peakSunHours" validate:"finite,gte=0.1,lte=24"`
	PanelWattage       int       `json:"panelWattage" yaml:"panelWattage" mapstructure:"panelWattage" validate:"gt=0,lte=2000"`
	SystemVoltage      int       `json:"systemVoltage" yaml:"systemVoltage" mapstructure:"systemVoltage" validate:"gt=0,lte=1500"`
	AutonomyDays       float64   `json:"autonomyDays" yaml:"autonomyDays" mapstructure:"autonomyDays" validate:"finite,gte=0,lte=30"`
	DepthOfDischarge   float64   `json:"depthOfDischarge" yaml:"depthOfDischarge" mapstructure:"depthOfDischarge" validate:"finite,gte=0.01,lte=1"`
	SystemEfficiency   float64   `json:"systemEfficiency" yaml:"systemEfficiency" mapstructure:"systemEfficiency" validate:"finite,gte=0.01,lte=1"`
	InverterTopology   Topology  `json:"inverterTopology" yaml:"inverterTopology" mapstructure:"inverterTopology" validate:"oneof=hybrid off-grid on-grid"`
	BatteryChemistry   Chemistry `json:"batteryChemistry" yaml:"batteryChemistry" mapstructure:"batteryChemistry" validate:"oneof=lithium gel lead-acid"`
	PeakLoadWatts      float64   `json:"peakLoadWatts" yaml:"peakLoadWatts" mapstructure:"peakLoadWatts" validate:"finite,gte=0,lte=10000000"`
}

// DefaultInputs returns the starting profile shown to a new customer.
func DefaultInputs() SystemInputs {
	return SystemInputs{
		MonthlyConsumption: constants.DefaultMonthlyConsumption,
		PeakSunHours:       constants.DefaultPeakSunHours,
		PanelWattage:       constants.DefaultPanelWattage,
		SystemVoltage:      constants.DefaultSystemVoltage,
		AutonomyDays:       constants.DefaultAutonomyDays,
		DepthOfDischarge:   constants.DefaultDepthOfDischarge,
		SystemEfficiency:   constants.DefaultSystemEfficiency,
		InverterTopology:   Hybrid,
		BatteryChemistry:   Lithium,
		PeakLoadWatts:      0,
	}
}

// ApplyChemistryDefaults returns a copy of prev with the chemistry changed and
// the depth of discharge reset to that chemistry's default.
func ApplyChemistryDefaults(prev SystemInputs, chemistry Chemistry) SystemInputs {
	next := prev
	next.BatteryChemistry = chemistry
	next.DepthOfDischarge = chemistry.DefaultDepthOfDischarge()
	return next
}

// Update is a partial change to SystemInputs. Nil fields are left untouched.
type Update struct {
	MonthlyConsumption *float64   `json:"monthlyConsumption,omitempty"`
	PeakSunHours       *float64   `json:"peakSunHours,omitempty"`
	PanelWattage       *int       `json:"panelWattage,omitempty"`
	SystemVoltage      *int       `json:"systemVoltage,omitempty"`
	AutonomyDays       *float64   `json:"autonomyDays,omitempty"`
	DepthOfDischarge   *float64   `json:"depthOfDischarge,omitempty"`
	SystemEfficiency   *float64   `json:"systemEfficiency,omitempty"`
	InverterTopology   *Topology  `json:"inverterTopology,omitempty"`
	BatteryChemistry   *Chemistry `json:"batteryChemistry,omitempty"`
	PeakLoadWatts      *float64   `json:"peakLoadWatts,omitempty"`
}

// ApplyUpdate returns prev with the update applied. A chemistry change
// re-derives the depth of discharge unless the same update sets it
// explicitly, in which case the explicit value wins.
func ApplyUpdate(prev SystemInputs, u Update) SystemInputs {
	next := prev
	if u.MonthlyConsumption != nil {
		next.MonthlyConsumption = *u.MonthlyConsumption
	}
	if u.PeakSunHours != nil {
		next.PeakSunHours = *u.PeakSunHours
	}
	if u.PanelWattage != nil {
		next.PanelWattage = *u.PanelWattage
	}
	if u.SystemVoltage != nil {
		next.SystemVoltage = *u.SystemVoltage
	}
	if u.AutonomyDays != nil {
		next.AutonomyDays = *u.AutonomyDays
	}
	if u.SystemEfficiency != nil {
		next.SystemEfficiency = *u.SystemEfficiency
	}
	if u.InverterTopology != nil {
		next.InverterTopology = *u.InverterTopology
	}
	if u.PeakLoadWatts != nil {
		next.PeakLoadWatts = *u.PeakLoadWatts
	}
	if u.BatteryChemistry != nil {
		next = ApplyChemistryDefaults(next, *u.BatteryChemistry)
	}
	if u.DepthOfDischarge != nil {
		next.DepthOfDischarge = *u.DepthOfDischarge
	}
	return next
}
