package theme

import (
	"strings"

	"github.com/watzon/penscape/color"
)

const (
	bodyTextDark   = "#e5e5e5"
	bodyTextLight  = "#333333"
	mutedTextDark  = "#a3a3a3"
	mutedTextLight = "#666666"
	cardQuoteText  = "#555555"
	h3TextDark     = "#d4d4d4"
)

// Compile returns base restyled from the six parameters in meta. It never
// fails: unknown font, heading style or texture ids fall back to their
// defaults. meta is stored on the result so it can be compiled again later.
func Compile(base Theme, meta Metadata) Theme {
	t := base.Clone()
	stored := meta
	t.Metadata = &stored

	brand := meta.BrandColor
	font := meta.Font.Stack()
	dark := color.IsDark(meta.BackgroundColor)

	bodyText, mutedText := bodyTextLight, mutedTextLight
	if dark {
		bodyText, mutedText = bodyTextDark, mutedTextDark
	}

	t.Container.Set("background-color", meta.BackgroundColor)
	t.Container.Set("background-image", meta.Texture.Image(brand))
	t.Container.Set("font-family", font)

	t.Paragraph.Set("color", bodyText)
	t.LI.Set("color", bodyText)
	t.UL.Set("color", bodyText)
	t.OL.Set("color", bodyText)

	t.H1.Set("color", brand)
	t.H2 = meta.HeadingStyle.Build(brand, meta.StrongColor, font)
	if dark {
		t.H3.Set("color", h3TextDark)
	} else {
		t.H3.Set("color", brand)
	}
	t.H3.Set("border-left", "3px solid "+color.Alpha(brand, 0.5))

	t.Strong.Set("color", meta.StrongColor)
	if strings.Contains(t.Strong.Get("background-image"), "gradient") {
		tint := color.Alpha(brand, 0.2)
		t.Strong.Set("background-image", "linear-gradient(120deg, "+tint+" 0%, "+tint+" 100%)")
	}

	t.Blockquote = compileBlockquote(t.Blockquote, brand, mutedText)

	t.HR.Set("background-color", color.Alpha(brand, 0.2))
	t.Image.Set("box-shadow", "0 8px 24px "+color.Alpha(brand, 0.15))

	if meta.HeadingStyle == HeadingCapsule {
		t.H2.Set("color", onBrandText)
	}

	return t
}

func compileBlockquote(bq Style, brand, mutedText string) Style {
	out := bq.Clone()
	out.Set("border-left-color", brand)
	out.Set("border-top-color", color.Alpha(brand, 0.4))
	out.Set("border-bottom-color", color.Alpha(brand, 0.4))

	bg := out.Get("background-color")
	card := isCard(bg)
	if bg != "transparent" && !card {
		out.Set("background-color", color.Alpha(brand, 0.05))
	}

	if card {
		out.Set("color", cardQuoteText)
	} else {
		out.Set("color", mutedText)
	}

	// offset shadow variant
	if strings.Contains(out.Get("box-shadow"), "4px 4px") {
		out.Set("border-color", brand)
		out.Set("box-shadow", "4px 4px 0px "+color.Alpha(brand, 0.2))
	}
	return out
}

func isCard(bg string) bool {
	switch bg {
	case "#ffffff", "#fff", "white":
		return true
	}
	return false
}

// Recompile compiles t again from its stored parameters. Themes without
// parameters are returned unchanged.
func Recompile(t Theme) Theme {
	meta, ok := t.Params()
	if !ok {
		return t.Clone()
	}
	return Compile(t, meta)
}
