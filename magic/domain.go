package magic

import (
	"strings"
	"unicode/utf16"

	"github.com/watzon/penscape/color"
	"github.com/watzon/penscape/theme"
)

// Platform is a known site whose look can be replicated.
type Platform string

const (
	PlatformGithub Platform = "github"
	PlatformMedium Platform = "medium"
	PlatformNotion Platform = "notion"
	PlatformApple  Platform = "apple"
	PlatformWeixin Platform = "weixin"
)

type platformRule struct {
	platform Platform
	needles  []string
}

// checked in order
var platformRules = []platformRule{
	{PlatformGithub, []string{"github"}},
	{PlatformMedium, []string{"medium"}},
	{PlatformNotion, []string{"notion"}},
	{PlatformApple, []string{"apple"}},
	{PlatformWeixin, []string{"qq", "weixin"}},
}

var platformParams = map[Platform]theme.Metadata{
	PlatformGithub: {
		BackgroundColor: "#0d1117",
		BrandColor:      "#58a6ff",
		StrongColor:     "#c9d1d9",
		Font:            theme.FontMono,
		HeadingStyle:    theme.HeadingClean,
		Texture:         theme.TextureLines,
	},
	PlatformMedium: {
		BackgroundColor: "#ffffff",
		BrandColor:      "#000000",
		StrongColor:     "#242424",
		Font:            theme.FontSerif,
		HeadingStyle:    theme.HeadingClean,
		Texture:         theme.TextureNone,
	},
	PlatformNotion: {
		BackgroundColor: "#ffffff",
		BrandColor:      "#e16259",
		StrongColor:     "#37352f",
		Font:            theme.FontSans,
		HeadingStyle:    theme.HeadingClean,
		Texture:         theme.TextureNone,
	},
	PlatformApple: {
		BackgroundColor: "#fbfbfd",
		BrandColor:      "#0066cc",
		StrongColor:     "#1d1d1f",
		Font:            theme.FontSans,
		HeadingStyle:    theme.HeadingClean,
		Texture:         theme.TextureNone,
	},
	PlatformWeixin: {
		BackgroundColor: "#fcfcfc",
		BrandColor:      "#07c160",
		StrongColor:     "#333333",
		Font:            theme.FontSans,
		HeadingStyle:    theme.HeadingLeftBorder,
		Texture:         theme.TextureNone,
	},
}

const (
	genericSaturation = 70
	genericLightness  = 50
)

// DomainMatch is the parameter set chosen for a URL.
type DomainMatch struct {
	// Platform is empty for unrecognized domains.
	Platform Platform
	Hue      int
	Params   theme.Metadata
}

// Known reports whether the URL matched a known platform.
func (m DomainMatch) Known() bool {
	return m.Platform != ""
}

// Name returns the display name of the generated theme.
func (m DomainMatch) Name() string {
	if !m.Known() {
		return "Modern Web"
	}
	p := string(m.Platform)
	return strings.ToUpper(p[:1]) + p[1:] + " Style"
}

// Description returns the description of the generated theme.
func (m DomainMatch) Description() string {
	if !m.Known() {
		return "Generated SaaS style for web content"
	}
	return "Replica of " + string(m.Platform) + " design system"
}

// MatchDomain picks a platform preset for url, or derives a generic parameter
// set whose brand hue is a pure function of the lowercased url.
func MatchDomain(url string) DomainMatch {
	lower := strings.ToLower(url)
	for _, rule := range platformRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				return DomainMatch{Platform: rule.platform, Params: platformParams[rule.platform]}
			}
		}
	}

	hue := DomainHue(lower)
	return DomainMatch{
		Hue: hue,
		Params: theme.Metadata{
			Font:            theme.FontSans,
			HeadingStyle:    theme.HeadingLeftBorder,
			Texture:         theme.TextureGridDotted,
			BrandColor:      color.HSLString(hue, genericSaturation, genericLightness),
			BackgroundColor: "#ffffff",
			StrongColor:     "#111827",
		},
	}
}

// DomainHue hashes s into a hue in [0, 360). The hash walks UTF-16 code
// units as h = c + 31*h, where the shifted term wraps at 32 bits.
func DomainHue(s string) int {
	var h int64
	for _, c := range utf16.Encode([]rune(s)) {
		h = int64(c) + int64(int32(h)<<5) - h
	}
	hue := h % 360
	if hue < 0 {
		hue = -hue
	}
	return int(hue)
}

// applyPlatformOverrides replaces the groups some platforms style by hand.
func applyPlatformOverrides(p Platform, t theme.Theme) theme.Theme {
	switch p {
	case PlatformGithub:
		t = t.WithStyle(theme.GroupBlockquote, theme.NewStyle(
			"margin", "16px 0",
			"padding", "16px",
			"border-left", "4px solid #30363d",
			"background-color", "#161b22",
			"color", "#8b949e",
			"border-radius", "6px",
		))
		t = t.WithStyle(theme.GroupCode, theme.NewStyle(
			"background-color", "rgba(110,118,129,0.4)",
			"padding", "0.2em 0.4em",
			"border-radius", "6px",
			"font-size", "85%",
			"font-family", "monospace",
			"color", "#c9d1d9",
		))
	case PlatformNotion:
		t = t.WithStyle(theme.GroupBlockquote, theme.NewStyle(
			"margin", "16px 0",
			"padding", "16px",
			"border-left", "4px solid #333",
			"background-color", "#f1f1ef",
			"color", "#37352f",
			"border-radius", "3px",
		))
	}
	return t
}
