// Package constants provides shared constants for the solar-quote application.
package constants

import "time"

// DateLayout is the format used for proposal issue dates.
const DateLayout = "2006-01-02"

// Sizing constants
const (
	// DaysPerMonth is the fixed month length used to convert between monthly
	// and daily energy figures.
	DaysPerMonth = 30
	// WattsPerKilowatt converts Wh to kWh and W to kW.
	WattsPerKilowatt = 1000.0
	// InverterSafetyMargin is the headroom applied to the simultaneous peak
	// load to cover inrush and motor start currents. It applies to every
	// topology.
	InverterSafetyMargin = 1.25
)

// Default depth of discharge per battery chemistry.
const (
	LithiumDepthOfDischarge  = 0.85
	GelDepthOfDischarge      = 0.60
	LeadAcidDepthOfDischarge = 0.50
)

// Default system inputs used when a configuration leaves a field out.
const (
	DefaultMonthlyConsumption = 350.0
	DefaultPeakSunHours       = 4.5
	DefaultPanelWattage       = 450
	DefaultSystemVoltage      = 24
	DefaultAutonomyDays       = 1.0
	DefaultDepthOfDischarge   = 0.8
	DefaultSystemEfficiency   = 0.8
)

// StandardPanelWattages lists the module ratings carried in the catalog.
var StandardPanelWattages = []int{330, 400, 450, 500, 550, 600}

// StandardSystemVoltages lists the nominal DC bus voltages.
var StandardSystemVoltages = []int{12, 24, 48}

// InverterTiers is the ladder of standard inverter sizes in watts.
var InverterTiers = []int{1000, 2000, 3000, 5000, 8000, 10000}

// Pricing constants, whole COP.
const (
	// InverterTierStep is the rounding step above the largest standard tier.
	InverterTierStep = 5000
	// InverterPriceThresholdWatts separates the two inverter price points.
	InverterPriceThresholdWatts = 3000

	PanelUnitPrice            int64 = 520000
	InverterSmallUnitPrice    int64 = 2550000
	InverterLargeUnitPrice    int64 = 5100000
	LithiumBatteryUnitPrice   int64 = 5250000
	StandardBatteryUnitPrice  int64 = 1180000
	StructureUnitPrice        int64 = 135000
	WiringProtectionUnitPrice int64 = 850000
	LaborUnitPrice            int64 = 1500000

	// TaxRate is the VAT surcharge applied on top of the quote subtotal.
	TaxRate = "0.19"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"
	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
	// OutputFormatJSON is the machine-readable proposal document
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultShutdownTimeout bounds graceful shutdown of the API server
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultReadHeaderTimeout bounds how long a client may take to send headers
	DefaultReadHeaderTimeout = 5 * time.Second
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Proposal defaults
const (
	// DefaultRecommendationLimit is how many inverter models a proposal shows.
	DefaultRecommendationLimit = 3
	// DefaultAdviceTimeoutSeconds bounds the advisory collaborator call.
	DefaultAdviceTimeoutSeconds = 20
	// AdviceUnavailable is shown when the advisory collaborator fails.
	AdviceUnavailable = "advice unavailable"
	// DefaultQuoteValidityDays is how long a quote may be accepted.
	DefaultQuoteValidityDays = 30
	// QuoteDisclaimer closes every printed proposal.
	QuoteDisclaimer = "This document is a preliminary quote and does not constitute a final contract."
)

// Validation constants
const (
	// FloatTolerance is the tolerance for engineering value comparisons.
	FloatTolerance = 1e-6
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
