package theme

import (
	"fmt"
	"strings"
)

// Font identifies one of the fixed font stacks.
type Font string

const (
	FontSans  Font = "sans"
	FontSerif Font = "serif"
	FontMono  Font = "mono"
	FontRound Font = "round"
)

// Fonts lists every font id.
var Fonts = []Font{FontSans, FontSerif, FontMono, FontRound}

// Stack returns the CSS font-family value. Unknown ids use the sans stack.
func (f Font) Stack() string {
	switch f {
	case FontSerif:
		return "'Noto Serif SC', 'Songti SC', serif"
	case FontMono:
		return "'JetBrains Mono', 'Courier New', monospace"
	case FontRound:
		return "'Varela Round', 'Noto Sans SC', sans-serif"
	default:
		return "'Noto Sans SC', -apple-system, BlinkMacSystemFont, sans-serif"
	}
}

// Label is the human-readable name shown in pickers.
func (f Font) Label() string {
	switch f {
	case FontSerif:
		return "Serif"
	case FontMono:
		return "Mono"
	case FontRound:
		return "Round"
	default:
		return "Sans"
	}
}

// HeadingStyle identifies a level-2 heading decoration.
type HeadingStyle string

const (
	HeadingCapsule    HeadingStyle = "capsule"
	HeadingMarker     HeadingStyle = "marker"
	HeadingGradient   HeadingStyle = "gradient"
	HeadingBracket    HeadingStyle = "bracket"
	HeadingUnderline  HeadingStyle = "underline"
	HeadingLeftBorder HeadingStyle = "left-border"
	HeadingClean      HeadingStyle = "clean"
)

// HeadingStyles lists every heading style id.
var HeadingStyles = []HeadingStyle{
	HeadingCapsule, HeadingMarker, HeadingGradient, HeadingBracket,
	HeadingUnderline, HeadingLeftBorder, HeadingClean,
}

// Label is the picker name of the heading style. Unknown ids read as Clean.
func (h HeadingStyle) Label() string {
	switch h {
	case HeadingCapsule:
		return "Capsule"
	case HeadingMarker:
		return "Marker"
	case HeadingGradient:
		return "Gradient"
	case HeadingBracket:
		return "Bracket"
	case HeadingUnderline:
		return "Underline"
	case HeadingLeftBorder:
		return "Border"
	default:
		return "Clean"
	}
}

// Texture identifies a tiled background pattern.
type Texture string

const (
	TextureNone       Texture = "none"
	TextureRicePaper  Texture = "rice_paper"
	TextureMagazine   Texture = "magazine"
	TextureGridDotted Texture = "grid_dotted"
	TextureLines      Texture = "lines"
	TextureCanvas     Texture = "canvas"
)

// Textures lists every texture id.
var Textures = []Texture{
	TextureNone, TextureRicePaper, TextureMagazine,
	TextureGridDotted, TextureLines, TextureCanvas,
}

// Label is the picker name of the texture. Unknown ids read as Pure.
func (t Texture) Label() string {
	switch t {
	case TextureRicePaper:
		return "Rice Paper"
	case TextureMagazine:
		return "Noise"
	case TextureGridDotted:
		return "Dotted"
	case TextureLines:
		return "Lines"
	case TextureCanvas:
		return "Canvas"
	default:
		return "Pure"
	}
}

const (
	magazineOpacity  = 0.03
	ricePaperOpacity = 0.15
)

// Image returns the CSS background-image value for the texture. Colored
// patterns are drawn in brand. Unknown ids produce "none".
func (t Texture) Image(brand string) string {
	c := encodeURIComponent(brand)
	switch t {
	case TextureMagazine:
		return fmt.Sprintf(`url("data:image/svg+xml,%%3Csvg viewBox='0 0 200 200' xmlns='http://www.w3.org/2000/svg'%%3E%%3Cfilter id='noise'%%3E%%3CfeTurbulence type='fractalNoise' baseFrequency='2' numOctaves='3' stitchTiles='stitch'/%%3E%%3C/filter%%3E%%3Crect width='100%%25' height='100%%25' filter='url(%%23noise)' opacity='%g'/%%3E%%3C/svg%%3E")`, magazineOpacity)
	case TextureRicePaper:
		return fmt.Sprintf(`url("data:image/svg+xml,%%3Csvg viewBox='0 0 400 400' xmlns='http://www.w3.org/2000/svg'%%3E%%3Cfilter id='paper'%%3E%%3CfeTurbulence type='fractalNoise' baseFrequency='0.04' numOctaves='5' stitchTiles='stitch'/%%3E%%3CfeColorMatrix type='saturate' values='0'/%%3E%%3C/filter%%3E%%3Crect width='100%%25' height='100%%25' filter='url(%%23paper)' opacity='%g'/%%3E%%3C/svg%%3E")`, ricePaperOpacity)
	case TextureGridDotted:
		return `url("data:image/svg+xml,%3Csvg width='12' height='12' viewBox='0 0 12 12' xmlns='http://www.w3.org/2000/svg'%3E%3Ccircle cx='1' cy='1' r='1' fill='` + c + `' fill-opacity='0.2'/%3E%3C/svg%3E")`
	case TextureLines:
		return `url("data:image/svg+xml,%3Csvg width='10' height='10' viewBox='0 0 10 10' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M-1 11L11 -1' stroke='` + c + `' stroke-width='0.5' stroke-opacity='0.15'/%3E%3C/svg%3E")`
	case TextureCanvas:
		return `url("data:image/svg+xml,%3Csvg width='8' height='8' viewBox='0 0 8 8' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 8L8 0M-2 2L2 -2M6 10L10 6' stroke='` + c + `' stroke-width='0.5' stroke-opacity='0.1'/%3E%3Cpath d='M0 0L8 8M-2 6L2 10M6 -2L10 2' stroke='` + c + `' stroke-width='0.5' stroke-opacity='0.1'/%3E%3C/svg%3E")`
	default:
		return "none"
	}
}

// encodeURIComponent escapes s the way browsers do for a URI component:
// everything except A-Z a-z 0-9 and -_.!~*'() is percent-encoded.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte("-_.!~*'()", c) >= 0:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&15])
		}
	}
	return b.String()
}
