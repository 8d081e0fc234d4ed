package theme

import "strings"

// ColorPreset is a named background/brand/strong combination offered in the
// live editor.
type ColorPreset struct {
	Name       string `json:"name"`
	Background string `json:"bgColor"`
	Brand      string `json:"brandColor"`
	Strong     string `json:"strongColor"`
}

// ColorPresets are the quick color schemes for live edits.
var ColorPresets = []ColorPreset{
	{Name: "Morandi", Background: "#f7f4f0", Brand: "#8c887d", Strong: "#5c5c5a"},
	{Name: "Reader", Background: "#fcfcfc", Brand: "#2c3e50", Strong: "#e74c3c"},
	{Name: "Dark", Background: "#1a1a1a", Brand: "#d4af37", Strong: "#ffffff"},
	{Name: "Mint", Background: "#f0f9f4", Brand: "#2d8a6e", Strong: "#1b4d3e"},
	{Name: "Peach", Background: "#fff0f3", Brand: "#d63384", Strong: "#a61e4d"},
	{Name: "Business", Background: "#ffffff", Brand: "#0f4c81", Strong: "#000000"},
}

// FindColorPreset looks a color preset up by case-insensitive name.
func FindColorPreset(name string) (ColorPreset, bool) {
	for _, p := range ColorPresets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return ColorPreset{}, false
}

// Apply returns meta with the preset's three colors.
func (p ColorPreset) Apply(meta Metadata) Metadata {
	meta.BackgroundColor = p.Background
	meta.BrandColor = p.Brand
	meta.StrongColor = p.Strong
	return meta
}
