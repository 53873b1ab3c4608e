package signage

import "sort"

// Layout sizes a placard. Lengths are millimetres.
type Layout struct {
	Name         string  `yaml:"name"`
	CellsPerLine int     `yaml:"cells_per_line"`
	DotDiameter  float64 `yaml:"dot_diameter"`
	DotSpacing   float64 `yaml:"dot_spacing"`
	CellSpacing  float64 `yaml:"cell_spacing"`
	LineSpacing  float64 `yaml:"line_spacing"`
	TitleSize    float64 `yaml:"title_size"`
	TextSize     float64 `yaml:"text_size"`
	Margin       float64 `yaml:"margin"`
	Guides       bool    `yaml:"guides"`
}

var Presets = map[string]Layout{
	"door": {
		Name: "door", CellsPerLine: 20, DotDiameter: 1.5, DotSpacing: 2.5,
		CellSpacing: 6.0, LineSpacing: 10.0, TitleSize: 16, TextSize: 9, Margin: 10,
	},
	"desk": {
		Name: "desk", CellsPerLine: 14, DotDiameter: 1.5, DotSpacing: 2.5,
		CellSpacing: 6.0, LineSpacing: 10.0, TitleSize: 12, TextSize: 7, Margin: 8,
	},
	"wall": {
		Name: "wall", CellsPerLine: 32, DotDiameter: 1.6, DotSpacing: 2.5,
		CellSpacing: 6.2, LineSpacing: 10.2, TitleSize: 28, TextSize: 14, Margin: 16,
	},
	"elevator": {
		Name: "elevator", CellsPerLine: 8, DotDiameter: 1.5, DotSpacing: 2.4,
		CellSpacing: 6.0, LineSpacing: 10.0, TitleSize: 14, TextSize: 8, Margin: 6,
		Guides: true,
	},
}

// GetPreset returns the named layout, or false when unknown.
func GetPreset(name string) (Layout, bool) {
	l, ok := Presets[name]
	return l, ok
}

// ListPresets returns preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
