package analysis

import "github.com/iwvelando/solar-quote/pkg/sizing"

// InverterOption is a catalog inverter model.
type InverterOption struct {
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	PowerWatts      int             `json:"powerWatts"`
	Topology        sizing.Topology `json:"topology"`
	Features        []string        `json:"features"`
	PriceRangeLabel string          `json:"priceRange"`
}

var catalog = []InverterOption{
	// Hybrid
	{Brand: "Growatt", Model: "SPF 3000TL LVM-ES", PowerWatts: 3000, Topology: sizing.Hybrid,
		Features: []string{"MPPT 80A", "WiFi monitoring", "Lithium compatible"}, PriceRangeLabel: "$2.4M - $3.0M"},
	{Brand: "Deye", Model: "SUN-5K-SG03LP1-EU", PowerWatts: 5000, Topology: sizing.Hybrid,
		Features: []string{"Dual MPPT", "Grid export limiting", "Parallel capable"}, PriceRangeLabel: "$5.0M - $6.2M"},
	{Brand: "Victron", Model: "MultiPlus-II 48/8000", PowerWatts: 8000, Topology: sizing.Hybrid,
		Features: []string{"UPS transfer <20ms", "PowerAssist", "VRM portal"}, PriceRangeLabel: "$9.5M - $11.0M"},
	{Brand: "Goodwe", Model: "GW10K-ET", PowerWatts: 10000, Topology: sizing.Hybrid,
		Features: []string{"Three-phase", "High voltage battery", "Backup output"}, PriceRangeLabel: "$11.0M - $13.5M"},
	{Brand: "MUST", Model: "PH1800 2KVA", PowerWatts: 1600, Topology: sizing.Hybrid,
		Features: []string{"PWM charger", "LCD display", "Generator input"}, PriceRangeLabel: "$1.1M - $1.5M"},

	// Off-grid
	{Brand: "Victron", Model: "Phoenix 24/1200", PowerWatts: 1000, Topology: sizing.OffGrid,
		Features: []string{"Pure sine wave", "ECO mode", "Bluetooth"}, PriceRangeLabel: "$1.6M - $2.0M"},
	{Brand: "Epever", Model: "IPower-Plus 2000W", PowerWatts: 2000, Topology: sizing.OffGrid,
		Features: []string{"Pure sine wave", "RS485", "Low idle consumption"}, PriceRangeLabel: "$1.4M - $1.9M"},
	{Brand: "Growatt", Model: "SPF 5000 ES", PowerWatts: 5000, Topology: sizing.OffGrid,
		Features: []string{"MPPT 100A", "Battery-less operation", "Parallel up to 6"}, PriceRangeLabel: "$3.8M - $4.6M"},
	{Brand: "Voltronic", Model: "Axpert MAX 7.2KW", PowerWatts: 7200, Topology: sizing.OffGrid,
		Features: []string{"Dual MPPT", "Detachable LCD", "Lithium BMS port"}, PriceRangeLabel: "$5.2M - $6.0M"},

	// On-grid
	{Brand: "Fronius", Model: "Primo 3.0-1", PowerWatts: 3000, Topology: sizing.OnGrid,
		Features: []string{"SnapINverter mounting", "Dynamic peak manager", "Solar.web"}, PriceRangeLabel: "$4.5M - $5.3M"},
	{Brand: "Huawei", Model: "SUN2000-5KTL-L1", PowerWatts: 5000, Topology: sizing.OnGrid,
		Features: []string{"98.4% max efficiency", "AFCI", "FusionSolar app"}, PriceRangeLabel: "$4.2M - $5.0M"},
	{Brand: "SMA", Model: "Sunny Boy 2.0", PowerWatts: 2000, Topology: sizing.OnGrid,
		Features: []string{"Integrated WiFi", "SMA ShadeFix", "Lightweight"}, PriceRangeLabel: "$3.1M - $3.7M"},
	{Brand: "Growatt", Model: "MIN 10000TL-X", PowerWatts: 10000, Topology: sizing.OnGrid,
		Features: []string{"Dual MPPT", "Type II SPD", "Smart monitoring"}, PriceRangeLabel: "$6.8M - $7.9M"},
}

// Catalog returns a copy of the inverter catalog.
func Catalog() []InverterOption {
	out := make([]InverterOption, len(catalog))
	for i, option := range catalog {
		out[i] = option.clone()
	}
	return out
}

// CatalogFor returns the catalog entries of one topology, in catalog order.
func CatalogFor(topology sizing.Topology) []InverterOption {
	out := make([]InverterOption, 0)
	for _, option := range catalog {
		if option.Topology == topology {
			out = append(out, option.clone())
		}
	}
	return out
}

func (o InverterOption) clone() InverterOption {
	o.Features = append([]string(nil), o.Features...)
	return o
}
