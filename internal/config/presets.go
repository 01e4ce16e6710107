package config

import "sort"

var (
	heroPalette = []string{"rgba(96, 165, 250, 0.4)", "rgba(147, 51, 234, 0.4)", "rgba(236, 72, 153, 0.4)"}
	cardPalette = []string{"rgba(96, 165, 250, 0.2)", "rgba(147, 51, 234, 0.2)", "rgba(236, 72, 153, 0.2)"}
)

var Presets = map[string]*FieldConfig{
	"hero": {
		Count: 10, BounceCount: 3, MaxSpeed: 1, MinSize: 3, MaxSize: 6,
		Palette: heroPalette,
	},
	"hero-mobile": {
		Count: 5, BounceCount: 2, MaxSpeed: 1, MinSize: 3, MaxSize: 6,
		Palette: heroPalette,
	},
	"card": {
		Count: 3, BounceCount: 1, MaxSpeed: 0.25, MinSize: 2, MaxSize: 5,
		Palette: cardPalette,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *FieldConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Palette = append([]string(nil), p.Palette...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
