package load

import (
	"math"

	"github.com/iwvelando/solar-quote/pkg/sizing"
)

// ApplyToInputs returns a copy of inputs driven by the census. A non-empty
// census always sets the peak load. The monthly consumption is replaced by the
// rounded census figure only when useConsumption is set.
func ApplyToInputs(inputs sizing.SystemInputs, appliances []Appliance, useConsumption bool) sizing.SystemInputs {
	if len(appliances) == 0 {
		return inputs
	}
	summary := Summarize(appliances)
	next := inputs
	next.PeakLoadWatts = summary.PeakWatts
	if useConsumption {
		next.MonthlyConsumption = math.Round(summary.MonthlyKwh)
	}
	return next
}
