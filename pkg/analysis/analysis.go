package analysis

import (
	"math"
	"sort"

	"github.com/iwvelando/solar-quote/pkg/sizing"
)

// SystemAnalysis is the technical assessment of a topology together with the
// catalog inverters ranked by fit.
type SystemAnalysis struct {
	Profile
	InverterRecommendations []InverterOption `json:"inverterRecommendations"`
}

// Analyze returns the topology profile and the full ranked recommendation
// list for the required inverter rating.
func Analyze(topology sizing.Topology, requiredWatts float64) SystemAnalysis {
	profile, _ := ProfileFor(topology)
	return SystemAnalysis{
		Profile:                 profile,
		InverterRecommendations: Recommend(CatalogFor(topology), requiredWatts),
	}
}

// Recommend ranks options by distance between their rating and requiredWatts.
// Ties go to the smaller unit; remaining ties keep input order. The result is
// never nil.
func Recommend(options []InverterOption, requiredWatts float64) []InverterOption {
	ranked := make([]InverterOption, len(options))
	copy(ranked, options)

	sort.SliceStable(ranked, func(i, j int) bool {
		di := math.Abs(float64(ranked[i].PowerWatts) - requiredWatts)
		dj := math.Abs(float64(ranked[j].PowerWatts) - requiredWatts)
		if di != dj {
			return di < dj
		}
		return ranked[i].PowerWatts < ranked[j].PowerWatts
	})
	return ranked
}

// Top truncates a ranked list for display.
func Top(options []InverterOption, limit int) []InverterOption {
	if limit <= 0 || limit >= len(options) {
		return options
	}
	return options[:limit]
}
