package load

var presets = []Appliance{
	{Name: "Washing Machine", Power: 500, Hours: 1, Quantity: 1, Icon: "washing"},
	{Name: "Fan", Power: 60, Hours: 8, Quantity: 2, Icon: "wind"},
	{Name: "Air Conditioner", Power: 1200, Hours: 6, Quantity: 1, Icon: "airvent"},
	{Name: "WiFi Router", Power: 15, Hours: 24, Quantity: 1, Icon: "wifi"},
	{Name: "Security Camera", Power: 10, Hours: 24, Quantity: 2, Icon: "camera"},
	{Name: "Phone Charger", Power: 15, Hours: 3, Quantity: 3, Icon: "smartphone"},
	{Name: "Air Fryer", Power: 1500, Hours: 0.5, Quantity: 1, Icon: "utensils"},
	{Name: "Microwave Oven", Power: 1200, Hours: 0.5, Quantity: 1, Icon: "microwave"},
	{Name: "Blender", Power: 400, Hours: 0.2, Quantity: 1, Icon: "blend"},
	{Name: "Refrigerator", Power: 150, Hours: 24, Quantity: 1, Icon: "refrigerator"},
	{Name: "LED TV", Power: 80, Hours: 5, Quantity: 1, Icon: "tv"},
	{Name: "LED Bulbs", Power: 9, Hours: 6, Quantity: 5, Icon: "lightbulb"},
	{Name: "Laptop", Power: 60, Hours: 6, Quantity: 1, Icon: "laptop"},
	{Name: "Coffee Maker", Power: 800, Hours: 0.5, Quantity: 1, Icon: "coffee"},
}

// Presets returns the predefined appliances offered when building a census.
func Presets() []Appliance {
	out := make([]Appliance, len(presets))
	copy(out, presets)
	return out
}

// StarterCensus is the census a new proposal starts with: refrigerator, TV
// and lighting.
func StarterCensus() []Appliance {
	return []Appliance{presets[9], presets[10], presets[11]}
}
