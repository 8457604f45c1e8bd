// Package pricing turns a sized system into priced quote line items.
package pricing

import (
	"math"

	"github.com/iwvelando/solar-quote/pkg/constants"
)

// maxInverterTier is the largest step multiple representable as an int.
const maxInverterTier = math.MaxInt - math.MaxInt%constants.InverterTierStep

// SuggestedInverterPower maps a raw inverter requirement to the smallest
// standard tier at or above it. Requirements beyond the largest tier round up
// to the next multiple of constants.InverterTierStep, saturating at
// maxInverterTier. Zero, negative and NaN requirements select the smallest
// tier.
func SuggestedInverterPower(watts float64) int {
	if math.IsNaN(watts) {
		return constants.InverterTiers[0]
	}
	for _, tier := range constants.InverterTiers {
		if watts <= float64(tier) {
			return tier
		}
	}
	step := float64(constants.InverterTierStep)
	tier := math.Ceil(watts/step) * step
	if tier >= maxInverterTier {
		return maxInverterTier
	}
	return int(tier)
}

// InverterUnitPrice is the price of an inverter of the given tier.
func InverterUnitPrice(tierWatts int) int64 {
	if tierWatts > constants.InverterPriceThresholdWatts {
		return constants.InverterLargeUnitPrice
	}
	return constants.InverterSmallUnitPrice
}
