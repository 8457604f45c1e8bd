// Package load aggregates an appliance census into the peak and energy
// figures the sizing engine consumes.
package load

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/mathutil"
)

// ErrInvalidAppliance is returned when a census entry cannot be aggregated.
var ErrInvalidAppliance = errors.New("invalid appliance")

// Appliance is one line of the load census.
type Appliance struct {
	Name     string  `json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Power    float64 `json:"power" yaml:"power" mapstructure:"power" validate:"finite,gte=0,lte=1000000"`
	Hours    float64 `json:"hours" yaml:"hours" mapstructure:"hours" validate:"finite,gte=0,lte=24"`
	Quantity int     `json:"quantity" yaml:"quantity" mapstructure:"quantity" validate:"gte=1,lte=10000"`
	Icon     string  `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`
}

// Summary is the aggregated census.
type Summary struct {
	Appliances int     `json:"appliances"`
	PeakWatts  float64 `json:"peakWatts"`
	DailyWh    float64 `json:"dailyWh"`
	MonthlyKwh float64 `json:"monthlyKwh"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		return mathutil.IsFinite(fl.Field().Float())
	})
	return v
}

// Validate checks every entry of the census.
func Validate(appliances []Appliance) error {
	for i, a := range appliances {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidAppliance, i, a.Name, err)
		}
	}
	return nil
}

// PeakWatts is the simultaneous load if every appliance runs at once.
func PeakWatts(appliances []Appliance) float64 {
	total := 0.0
	for _, a := range appliances {
		total += a.Power * float64(a.Quantity)
	}
	return total
}

// DailyWh is the energy the census consumes per day.
func DailyWh(appliances []Appliance) float64 {
	total := 0.0
	for _, a := range appliances {
		total += a.Power * a.Hours * float64(a.Quantity)
	}
	return total
}

// Summarize aggregates the census.
func Summarize(appliances []Appliance) Summary {
	daily := DailyWh(appliances)
	return Summary{
		Appliances: len(appliances),
		PeakWatts:  PeakWatts(appliances),
		DailyWh:    daily,
		MonthlyKwh: daily * constants.DaysPerMonth / constants.WattsPerKilowatt,
	}
}
