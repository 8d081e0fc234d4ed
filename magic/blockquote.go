package magic

import (
	"github.com/watzon/penscape/color"
	"github.com/watzon/penscape/theme"
)

const quoteText = "#555555"

// quoteStyle returns the archetype-specific blockquote laid over a generated theme.
func quoteStyle(a Archetype, brand string) theme.Style {
	base := theme.NewStyle(
		"margin", "24px 0",
		"padding", "16px 20px",
		"font-size", "15px",
		"line-height", "1.7",
		"color", quoteText,
	)

	switch a {
	case ClassicElegant:
		return base.With(theme.NewStyle(
			"background-color", "transparent",
			"border-left", "none",
			"border-top", "1px solid "+color.Alpha(brand, 0.4),
			"border-bottom", "1px solid "+color.Alpha(brand, 0.4),
			"text-align", "center",
			"font-style", "italic",
			"padding", "24px 10px",
			"color", brand,
		))
	case ModernTech, BusinessClean:
		return base.With(theme.NewStyle(
			"background-color", color.Alpha(brand, 0.05),
			"border-left", "4px solid "+brand,
		))
	case ArtPop:
		return base.With(theme.NewStyle(
			"background-color", "#fff",
			"border-radius", "8px",
			"box-shadow", "4px 4px 0px "+color.Alpha(brand, 0.2),
			"border", "1px solid "+brand,
			"color", "#222",
		))
	default:
		return base.With(theme.NewStyle(
			"background-color", "#fff",
			"border-radius", "8px",
			"box-shadow", "0 2px 12px rgba(0,0,0,0.04)",
			"border", "1px solid "+color.Alpha(brand, 0.15),
		))
	}
}
