package config

import "sort"

// Presets are fixed sequences that show characteristic behaviour of the
// algorithms.
var Presets = map[string]*Config{
	"scenario": {
		Algorithm: "Bubble Sort", Speed: "Normal",
		Values: []int{5, 3, 8, 1},
	},
	"reversed": {
		Algorithm: "Insertion Sort", Speed: "Fast",
		Values: []int{90, 80, 70, 60, 50, 40, 30, 20, 10, 0},
	},
	"sorted": {
		Algorithm: "Insertion Sort", Speed: "Fast",
		Values: []int{1, 2, 3, 4, 5, 6},
	},
	"equal": {
		Algorithm: "Selection Sort", Speed: "Normal",
		Values: []int{2, 2, 2},
	},
	"duplicates": {
		Algorithm: "Selection Sort", Speed: "Normal",
		Values: []int{7, 3, 7, 3, 7, 3},
	},
	"pair": {
		Algorithm: "Bubble Sort", Speed: "Slow",
		Values: []int{100, 0},
	},
}

// GetPreset returns a copy of the preset merged over DefaultConfig, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Speed = p.Speed
	cfg.Values = append([]int(nil), p.Values...)
	cfg.Count = len(p.Values)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
