// Package magic synthesizes themes from free text, image palettes and URLs.
package magic

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/watzon/penscape/color"
	"github.com/watzon/penscape/theme"
)

// Generated theme id prefixes.
const (
	PrefixText   = "magic-"
	PrefixImage  = "img-"
	PrefixURL    = "web-"
	PrefixCustom = "custom-"
)

const (
	keywordMaxRunes  = 20
	keywordKeepRunes = 15

	seedJitter = 20
	modeDark   = 0.8
	modePaper  = 0.5

	darkBackgroundSaturation = 20
	darkBackgroundLightness  = 10
	headLightnessLimit       = 60
	headLightnessLight       = 35
	headLightnessDark        = 85
)

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.rnd = src
	}
}

// WithClock sets the clock used for theme ids.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// Generator handles the generation of themes
type Generator struct {
	mu  sync.Mutex
	rnd Source
	now func() time.Time
}

// NewGenerator creates a new theme generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) newID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, g.now().UnixMilli())
}

// intBetween draws uniformly from [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rnd.Intn(len(items))]
}

// Keyword shortens long input for use in theme names.
func Keyword(text string) string {
	r := []rune(text)
	if len(r) > keywordMaxRunes {
		return string(r[:keywordKeepRunes])
	}
	return text
}

// FromText generates a theme from free text such as a topic or a title.
func (g *Generator) FromText(text string) theme.Theme {
	match := Classify(text)
	profile := ProfileOf(match.Archetype)
	keyword := Keyword(text)

	g.mu.Lock()
	meta, containerText := g.textParams(match, profile)
	id := g.newID(PrefixText)
	g.mu.Unlock()

	base := theme.Minimal()
	base.ID = id
	base.Preset = false
	base.Name = keyword + " " + profile.Label
	base.Description = "Generated " + strings.Replace(string(profile.Archetype), "_", " ", 1) + " style for " + keyword
	base.Container.Set("color", containerText)

	t := theme.Compile(base, meta)
	t.Blockquote = quoteStyle(profile.Archetype, meta.BrandColor)
	return t
}

// textParams draws the parameter set for a text theme. Callers hold g.mu.
func (g *Generator) textParams(match Match, p Profile) (theme.Metadata, string) {
	var h int
	if match.HasHue {
		h = match.HueSeed + g.intBetween(-seedJitter, seedJitter)
	} else {
		h = g.rnd.Intn(360)
	}
	s := g.intBetween(p.Saturation.Min, p.Saturation.Max)
	l := g.intBetween(p.Lightness.Min, p.Lightness.Max)
	brand := color.HSLString(h, s, l)

	mode := p.Background
	if mode == ModeAny {
		roll := g.rnd.Float64()
		switch {
		case roll > modeDark:
			mode = ModeDark
		case roll > modePaper:
			mode = ModePaper
		default:
			mode = ModeLight
		}
	}

	bg, containerText := "#ffffff", "#333333"
	switch mode {
	case ModeDark:
		bg = color.HSLString(h, darkBackgroundSaturation, darkBackgroundLightness)
		containerText = "#e0e0e0"
	case ModePaper:
		bg = "#f9f9f7"
		containerText = "#2c2c2c"
	}

	head := brand
	if mode == ModeDark {
		head = color.HSLString(h, s, headLightnessDark)
	} else if l > headLightnessLimit {
		head = color.HSLString(h, s, headLightnessLight)
	}

	font := pick(g, p.Fonts)
	heading := pick(g, p.HeadingStyles)
	texture := pick(g, p.Textures)
	if mode == ModePaper && texture == theme.TextureNone {
		if g.rnd.Float64() > 0.5 {
			texture = theme.TextureRicePaper
		} else {
			texture = theme.TextureCanvas
		}
	}

	return theme.Metadata{
		Font:            font,
		HeadingStyle:    heading,
		Texture:         texture,
		BrandColor:      brand,
		BackgroundColor: bg,
		StrongColor:     head,
	}, containerText
}

// FromPalette generates a theme from colors extracted from an image.
func (g *Generator) FromPalette(p color.Palette) theme.Theme {
	heading, texture := theme.HeadingLeftBorder, theme.TextureRicePaper
	if p.IsDark {
		heading, texture = theme.HeadingGradient, theme.TextureMagazine
	}

	g.mu.Lock()
	id := g.newID(PrefixImage)
	g.mu.Unlock()

	base := theme.Minimal()
	base.ID = id
	base.Preset = false
	base.Name = "Image Inspired"
	base.Description = "Extracted from your uploaded image"

	return theme.Compile(base, theme.Metadata{
		Font:            theme.FontSans,
		HeadingStyle:    heading,
		Texture:         texture,
		BrandColor:      p.Brand,
		BackgroundColor: p.Background,
		StrongColor:     p.Strong,
	})
}

// FromURL generates a theme that mimics the site at url.
func (g *Generator) FromURL(url string) theme.Theme {
	m := MatchDomain(url)

	g.mu.Lock()
	id := g.newID(PrefixURL)
	g.mu.Unlock()

	base := theme.Minimal()
	base.ID = id
	base.Preset = false
	base.Name = m.Name()
	base.Description = m.Description()

	return applyPlatformOverrides(m.Platform, theme.Compile(base, m.Params))
}

// Update recompiles t with edited parameters. Editing a built-in theme
// produces a new custom theme and leaves the built-in one alone.
func (g *Generator) Update(t theme.Theme, meta theme.Metadata) theme.Theme {
	out := theme.Compile(t, meta)
	if out.Preset {
		g.mu.Lock()
		out.ID = g.newID(PrefixCustom)
		g.mu.Unlock()
		out.Name += " Custom"
		out.Preset = false
		out.Pinned = false
	}
	return out
}

// ResetColors returns edited with its three colors restored from initial.
func ResetColors(edited, initial theme.Metadata) theme.Metadata {
	edited.BackgroundColor = initial.BackgroundColor
	edited.BrandColor = initial.BrandColor
	edited.StrongColor = initial.StrongColor
	return edited
}
