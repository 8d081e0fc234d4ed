package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGB color
type Color struct {
	R uint8
	G uint8
	B uint8
}

// HSL represents a color in HSL space. H is in degrees, S and L are percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{R: 0, G: 0, B: 0}
)

var (
	digitsPattern = regexp.MustCompile(`\d+`)
	hslPattern    = regexp.MustCompile(`^hsla?\(\s*(-?\d+(?:\.\d+)?)\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*(?:,\s*[\d.]+\s*)?\)$`)
)

// Hex returns the color as a lowercase #rrggbb string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString returns the color in CSS rgb() notation
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL converts the color to HSL space
func (c Color) HSL() HSL {
	return rgbToHSL(c)
}

// RGB converts the HSL value back to RGB
func (h HSL) RGB() Color {
	return hslToRGB(h)
}

// String returns the value in CSS hsl() notation with rounded components
func (h HSL) String() string {
	return HSLString(int(math.Round(h.H)), int(math.Round(h.S)), int(math.Round(h.L)))
}

// HSLString formats integer components as a CSS hsl() color.
func HSLString(h, s, l int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// Parse reads a CSS color string. It understands #rgb, #rrggbb, rgb(), rgba(),
// hsl(), hsla() and the CSS named colors.
func Parse(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return hexToRGB(s)
	case strings.HasPrefix(s, "rgb"):
		nums := digitsPattern.FindAllString(s, -1)
		if len(nums) < 3 {
			return Color{}, false
		}
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(nums[i])
			if err != nil || v > 255 {
				return Color{}, false
			}
			out[i] = uint8(v)
		}
		return Color{R: out[0], G: out[1], B: out[2]}, true
	case strings.HasPrefix(s, "hsl"):
		hsl, ok := parseHSL(s)
		if !ok {
			return Color{}, false
		}
		return hslToRGB(hsl), true
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{R: c.R, G: c.G, B: c.B}, true
	}
	return Color{}, false
}

func parseHSL(s string) (HSL, bool) {
	m := hslPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return HSL{}, false
	}
	h, _ := strconv.ParseFloat(m[1], 64)
	sat, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: math.Min(sat, 100), L: math.Min(l, 100)}, true
}

// Brightness returns the HSP perceived brightness of the color in [0, 255].
func Brightness(c Color) float64 {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return math.Sqrt(0.299*r*r + 0.587*g*g + 0.114*b*b)
}

// IsDark reports whether a CSS color reads as a dark background.
// hsl colors are judged by lightness alone, unparseable colors are never dark.
func IsDark(s string) bool {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "hsl") {
		hsl, ok := parseHSL(s)
		return ok && hsl.L < 50
	}
	c, ok := Parse(s)
	if !ok {
		return false
	}
	return Brightness(c) < 127.5
}

// Alpha returns the color with the given opacity applied.
func Alpha(s string, opacity float64) string {
	if s == "" {
		return "transparent"
	}
	op := strconv.FormatFloat(opacity, 'f', -1, 64)
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		return "hsla(" + strings.TrimSuffix(strings.TrimPrefix(lower, "hsl("), ")") + ", " + op + ")"
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return "rgba(" + strings.TrimSuffix(strings.TrimPrefix(lower, "rgb("), ")") + ", " + op + ")"
	case strings.HasPrefix(lower, "hsla("):
		hsl, ok := parseHSL(lower)
		if !ok {
			return s
		}
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", int(math.Round(hsl.H)), int(math.Round(hsl.S)), int(math.Round(hsl.L)), op)
	}
	c, ok := Parse(lower)
	if !ok {
		return s
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, op)
}

// Distance calculates the Euclidean distance between two colors in RGB space
func Distance(c1, c2 Color) float64 {
	rDiff := float64(c1.R) - float64(c2.R)
	gDiff := float64(c1.G) - float64(c2.G)
	bDiff := float64(c1.B) - float64(c2.B)
	return math.Sqrt(rDiff*rDiff + gDiff*gDiff + bDiff*bDiff)
}

// Helper functions for color conversion
func hexToRGB(hex string) (Color, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex[:6], 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func rgbToHSL(rgb Color) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	h, s, l := 0.0, 0.0, (max+min)/2

	if max != min {
		d := max - min
		s = d / (max + min)
		if l > 0.5 {
			s = d / (2 - max - min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

// Convert HSL back to RGB
func hslToRGB(hsl HSL) Color {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	var r, g, b float64

	if s == 0 {
		r = l
		g = l
		b = l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	return Color{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
