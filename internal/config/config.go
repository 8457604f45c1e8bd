// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the proposal config.
package config

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/load"
	"github.com/iwvelando/solar-quote/pkg/pricing"
	"github.com/iwvelando/solar-quote/pkg/sizing"
	"github.com/iwvelando/solar-quote/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SOLAR_QUOTE_SYSTEM_PEAKSUNHOURS.
const EnvPrefix = "SOLAR_QUOTE"

// Configuration holds everything needed to produce one proposal.
type Configuration struct {
	Logging         LoggingConfig         `yaml:"logging,omitempty" json:"logging,omitempty" mapstructure:"logging"`
	Output          OutputConfig          `yaml:"output,omitempty" json:"output,omitempty" mapstructure:"output"`
	Company         Party                 `yaml:"company" json:"company" mapstructure:"company"`
	Customer        Party                 `yaml:"customer" json:"customer" mapstructure:"customer"`
	System          SystemConfig          `yaml:"system" json:"system" mapstructure:"system"`
	Appliances      []load.Appliance      `yaml:"appliances,omitempty" json:"appliances,omitempty" mapstructure:"appliances"`
	Quote           QuoteConfig           `yaml:"quote,omitempty" json:"quote,omitempty" mapstructure:"quote"`
	Recommendations RecommendationsConfig `yaml:"recommendations,omitempty" json:"recommendations,omitempty" mapstructure:"recommendations"`
	Advice          AdviceConfig          `yaml:"advice,omitempty" json:"advice,omitempty" mapstructure:"advice"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level,omitempty" mapstructure:"level"`                // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format,omitempty" mapstructure:"format"`             // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// Party is a proposal header block for the installer or the customer.
type Party struct {
	Name    string `yaml:"name" json:"name" mapstructure:"name"`
	TaxID   string `yaml:"taxId,omitempty" json:"taxId,omitempty" mapstructure:"taxId"`
	Phone   string `yaml:"phone,omitempty" json:"phone,omitempty" mapstructure:"phone"`
	Email   string `yaml:"email,omitempty" json:"email,omitempty" mapstructure:"email"`
	Address string `yaml:"address,omitempty" json:"address,omitempty" mapstructure:"address"`
	City    string `yaml:"city,omitempty" json:"city,omitempty" mapstructure:"city"`
}

// SystemConfig is the sizing input snapshot plus options for deriving it
// from the appliance census.
type SystemConfig struct {
	sizing.SystemInputs `yaml:",inline" mapstructure:",squash"`
	// ConsumptionFromCensus replaces monthlyConsumption with the census total.
	ConsumptionFromCensus bool `yaml:"consumptionFromCensus,omitempty" json:"consumptionFromCensus,omitempty" mapstructure:"consumptionFromCensus"`
}

// QuoteConfig holds operator adjustments to the derived quote.
type QuoteConfig struct {
	ValidityDays int                `yaml:"validityDays,omitempty" json:"validityDays,omitempty" mapstructure:"validityDays"`
	Overrides    []pricing.Override `yaml:"overrides,omitempty" json:"overrides,omitempty" mapstructure:"overrides"`
}

// RecommendationsConfig controls how many catalog inverters a proposal shows.
type RecommendationsConfig struct {
	Limit int `yaml:"limit,omitempty" json:"limit,omitempty" mapstructure:"limit"`
}

// AdviceConfig controls the advisory text section.
type AdviceConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" mapstructure:"timeout"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	// depthOfDischarge has no default, so AutomaticEnv alone never sees it.
	_ = v.BindEnv("system.depthOfDischarge", EnvPrefix+"_SYSTEM_DEPTHOFDISCHARGE")
	return v
}

// wholeNumberHook rejects fractional values bound for integer fields, which
// mapstructure would otherwise truncate (panelWattage: 450.5 -> 450).
func wholeNumberHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected a whole number, got %v", f)
	}
	return data, nil
}

func decodeHooks() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		wholeNumberHook,
	))
}

// setDefaults fills every system field except depthOfDischarge, which
// defaults to the chosen chemistry in ResolveInputs.
func setDefaults(v *viper.Viper) {
	v.SetDefault("system.monthlyConsumption", constants.DefaultMonthlyConsumption)
	v.SetDefault("system.peakSunHours", constants.DefaultPeakSunHours)
	v.SetDefault("system.panelWattage", constants.DefaultPanelWattage)
	v.SetDefault("system.systemVoltage", constants.DefaultSystemVoltage)
	v.SetDefault("system.autonomyDays", constants.DefaultAutonomyDays)
	v.SetDefault("system.systemEfficiency", constants.DefaultSystemEfficiency)
	v.SetDefault("system.inverterTopology", string(sizing.Hybrid))
	v.SetDefault("system.batteryChemistry", string(sizing.Lithium))
	v.SetDefault("system.peakLoadWatts", 0)
	v.SetDefault("quote.validityDays", constants.DefaultQuoteValidityDays)
	v.SetDefault("recommendations.limit", constants.DefaultRecommendationLimit)
	v.SetDefault("advice.enabled", true)
	v.SetDefault("advice.timeout", time.Duration(constants.DefaultAdviceTimeoutSeconds)*time.Second)
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader parses a YAML (or JSON) document into a
// Configuration using the same defaults as LoadConfiguration.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration, decodeHooks()); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	if configuration.Recommendations.Limit <= 0 {
		configuration.Recommendations.Limit = constants.DefaultRecommendationLimit
	}
	// An appliance with no quantity counts once.
	for i := range configuration.Appliances {
		if configuration.Appliances[i].Quantity == 0 {
			configuration.Appliances[i].Quantity = 1
		}
	}
	return &configuration, nil
}

// ResolveInputs returns the sizing inputs for this configuration: the system
// block with the chemistry depth of discharge filled in when absent, then
// driven by the appliance census.
func (c *Configuration) ResolveInputs() sizing.SystemInputs {
	inputs := c.System.SystemInputs
	if inputs.DepthOfDischarge == 0 {
		inputs.DepthOfDischarge = inputs.BatteryChemistry.DefaultDepthOfDischarge()
	}
	return load.ApplyToInputs(inputs, c.Appliances, c.System.ConsumptionFromCensus)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	inputs := c.ResolveInputs()
	warnings := validation.InputWarnings(inputs)

	if c.System.ConsumptionFromCensus && len(c.Appliances) == 0 {
		warnings = append(warnings, "consumptionFromCensus is set but no appliances are listed - using monthlyConsumption as given")
	}
	if len(c.Appliances) > 0 && c.System.PeakLoadWatts > 0 && c.System.PeakLoadWatts != inputs.PeakLoadWatts {
		warnings = append(warnings, fmt.Sprintf("peakLoadWatts %.0fW is replaced by the appliance census peak of %.0fW",
			c.System.PeakLoadWatts, inputs.PeakLoadWatts))
	}
	if c.Customer.Name == "" {
		warnings = append(warnings, "Customer name is empty - the proposal header will be blank")
	}

	known := map[string]bool{
		pricing.PanelItemID: true, pricing.InverterItemID: true, pricing.BatteryItemID: true,
		pricing.StructureItemID: true, pricing.WiringItemID: true, pricing.LaborItemID: true,
	}
	for _, o := range c.Quote.Overrides {
		if !known[o.ID] {
			warnings = append(warnings, fmt.Sprintf("Quote override '%s' does not match any quote item", o.ID))
		}
	}
	return warnings
}
