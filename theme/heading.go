package theme

import "github.com/watzon/penscape/color"

const onBrandText = "#ffffff"

// Build returns the level-2 heading style. brand draws the decoration,
// text colors the heading itself and font is a font-family value. Unknown
// heading styles resolve to clean.
func (h HeadingStyle) Build(brand, text, font string) Style {
	base := NewStyle(
		"margin", "40px 0 24px",
		"font-weight", "bold",
		"font-family", font,
		"line-height", "1.4",
		"display", "block",
	)

	switch h {
	case HeadingCapsule:
		return base.With(NewStyle(
			"display", "inline-block",
			"background-color", brand,
			"color", onBrandText,
			"padding", "6px 16px",
			"border-radius", "50px",
			"box-shadow", "0 4px 10px "+color.Alpha(brand, 0.3),
		))
	case HeadingMarker:
		return base.With(NewStyle(
			"display", "inline",
			"background", "linear-gradient(180deg, transparent 60%, "+color.Alpha(brand, 0.35)+" 60%)",
			"color", text,
			"padding", "0 4px",
		))
	case HeadingGradient:
		return base.With(NewStyle(
			"background", "linear-gradient(135deg, "+brand+" 0%, "+color.Alpha(brand, 0.6)+" 100%)",
			"-webkit-background-clip", "text",
			"-webkit-text-fill-color", "transparent",
			"display", "inline-block",
		))
	case HeadingBracket:
		return base.With(NewStyle(
			"display", "inline-block",
			"border-left", "3px solid "+brand,
			"border-right", "3px solid "+brand,
			"padding", "0 12px",
			"color", text,
		))
	case HeadingUnderline:
		return base.With(NewStyle(
			"border-bottom", "2px solid "+brand,
			"display", "inline-block",
			"padding-bottom", "6px",
			"color", text,
		))
	case HeadingLeftBorder:
		return base.With(NewStyle(
			"border-left", "4px solid "+brand,
			"padding-left", "12px",
			"color", text,
		))
	default:
		return base.With(NewStyle(
			"color", text,
			"font-size", "24px",
			"border-bottom", "1px solid "+color.Alpha(brand, 0.1),
			"padding-bottom", "12px",
		))
	}
}
