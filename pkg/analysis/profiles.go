// Package analysis describes the technical trade-offs of each inverter
// topology and recommends catalog inverters for a required rating.
package analysis

import "github.com/iwvelando/solar-quote/pkg/sizing"

// Profile is the static technical profile of a topology.
type Profile struct {
	RequiresGridConnection bool     `json:"requiresGridConnection"`
	RequiresBatteries      bool     `json:"requiresBatteries"`
	EstimatedEfficiency    float64  `json:"estimatedEfficiency"`
	Pros                   []string `json:"pros"`
	Cons                   []string `json:"cons"`
	IdealFor               []string `json:"idealFor"`
}

var profiles = map[sizing.Topology]Profile{
	sizing.OnGrid: {
		RequiresGridConnection: true,
		RequiresBatteries:      false,
		EstimatedEfficiency:    0.97,
		Pros: []string{
			"Lowest upfront cost per installed kWp",
			"Highest conversion efficiency, no battery losses",
			"Surplus energy can be exported to the utility",
			"Minimal maintenance",
		},
		Cons: []string{
			"No supply during grid outages",
			"Depends on utility interconnection approval",
			"No energy storage for night-time use",
		},
		IdealFor: []string{
			"Urban homes with a reliable grid",
			"Businesses with daytime consumption",
			"Reducing the electricity bill",
		},
	},
	sizing.OffGrid: {
		RequiresGridConnection: false,
		RequiresBatteries:      true,
		EstimatedEfficiency:    0.85,
		Pros: []string{
			"Full energy independence",
			"Works where there is no grid",
			"No monthly utility bill",
			"Immune to grid outages",
		},
		Cons: []string{
			"Battery bank raises cost and needs replacement",
			"Lower efficiency from charge and discharge cycles",
			"Consumption must be planned around storage",
		},
		IdealFor: []string{
			"Rural properties and farms",
			"Cabins and remote sites",
			"Telecom and monitoring stations",
		},
	},
	sizing.Hybrid: {
		RequiresGridConnection: false,
		RequiresBatteries:      true,
		EstimatedEfficiency:    0.92,
		Pros: []string{
			"Backup power during outages",
			"Uses the grid as an optional support source",
			"Stores daytime surplus for the evening",
			"Smart energy management between sources",
		},
		Cons: []string{
			"Higher investment than on-grid",
			"Battery bank needs periodic maintenance",
			"More complex installation and commissioning",
		},
		IdealFor: []string{
			"Homes with frequent outages",
			"Shops that cannot stop operating",
			"Users seeking resilience and savings",
		},
	},
}

// ProfileFor returns the profile of a topology. Unknown topologies get an
// empty profile and false.
func ProfileFor(topology sizing.Topology) (Profile, bool) {
	p, ok := profiles[topology]
	if !ok {
		return Profile{}, false
	}
	return Profile{
		RequiresGridConnection: p.RequiresGridConnection,
		RequiresBatteries:      p.RequiresBatteries,
		EstimatedEfficiency:    p.EstimatedEfficiency,
		Pros:                   append([]string(nil), p.Pros...),
		Cons:                   append([]string(nil), p.Cons...),
		IdealFor:               append([]string(nil), p.IdealFor...),
	}, true
}
