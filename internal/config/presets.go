package config

import "sort"

// Preset is a worked example: named inputs for one formula, in canonical
// units.
type Preset struct {
	Description string             `yaml:"description"`
	Inputs      map[string]float64 `yaml:"inputs"`
}

var Presets = map[string]map[string]Preset{
	"speed": {
		"sprint":   {Description: "100 m world record", Inputs: map[string]float64{"distance": 100, "time": 9.58}},
		"marathon": {Description: "marathon world record", Inputs: map[string]float64{"distance": 42195, "time": 7235}},
	},
	"travel-time": {
		"light-to-earth": {Description: "sunlight reaching earth", Inputs: map[string]float64{"distance": 1.496e11, "speed": 299792458}},
	},
	"force": {
		"apple":    {Description: "a 100 g apple at rest on earth", Inputs: map[string]float64{"mass": 100, "acceleration": 9.80665}},
		"kilogram": {Description: "weight of one kilogram", Inputs: map[string]float64{"mass": 1000, "acceleration": 9.8}},
	},
	"density": {
		"water":     {Description: "one liter of water", Inputs: map[string]float64{"mass": 1000, "volume": 1}},
		"aluminium": {Description: "a 5.4 kg aluminium block", Inputs: map[string]float64{"mass": 5400, "volume": 2}},
	},
	"kinetic-energy": {
		"baseball": {Description: "fastball", Inputs: map[string]float64{"mass": 145, "speed": 44.7}},
		"car":      {Description: "1.5 t car at 100 km/h", Inputs: map[string]float64{"mass": 1.5e6, "speed": 27.78}},
	},
	"potential-energy": {
		"stairs": {Description: "climbing one floor", Inputs: map[string]float64{"mass": 70000, "gravity": 9.80665, "height": 3}},
		"moon":   {Description: "same climb on the moon", Inputs: map[string]float64{"mass": 70000, "gravity": 1.62, "height": 3}},
	},
	"current": {
		"led":   {Description: "led with series resistor", Inputs: map[string]float64{"voltage": 3.3, "resistance": 165}},
		"mains": {Description: "60 W bulb element", Inputs: map[string]float64{"voltage": 230, "resistance": 881.7}},
	},
	"electric-power": {
		"usb-c": {Description: "usb-c power delivery", Inputs: map[string]float64{"voltage": 20, "current": 5}},
	},
	"pressure": {
		"heel": {Description: "60 kg on a 1 cm² heel", Inputs: map[string]float64{"force": 588.4, "area": 0.0001}},
	},
}

func GetPreset(formula, name string) (Preset, bool) {
	byFormula, ok := Presets[formula]
	if !ok {
		return Preset{}, false
	}
	p, ok := byFormula[name]
	return p, ok
}

// ListPresets returns preset names for formula in sorted order, or nil.
func ListPresets(formula string) []string {
	byFormula, ok := Presets[formula]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byFormula))
	for name := range byFormula {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
