package color

import (
	"errors"
	"image"
	stdcolor "image/color"
	"math"
	"sort"

	"github.com/nfnt/resize"
)

const (
	sampleSize   = 100
	quantization = 5
	minAlpha     = 128

	// share of sampled pixels an extreme tone needs to win the background
	extremeShare = 0.1

	brandMinDistance    = 50
	brandMinSaturation  = 30
	distinctDistance    = 80
	strongBrandDistance = 50
)

// ErrNoOpaquePixels is returned when an image has nothing to sample.
var ErrNoOpaquePixels = errors.New("image has no opaque pixels")

// Palette holds the theme colors derived from an image
type Palette struct {
	Background string `json:"bgColor" yaml:"bgColor"`
	Brand      string `json:"brandColor" yaml:"brandColor"`
	Strong     string `json:"strongColor" yaml:"strongColor"`
	IsDark     bool   `json:"isDark" yaml:"isDark"`
}

// FallbackPalette is the neutral palette used when an image cannot be analyzed
func FallbackPalette() Palette {
	return Palette{
		Background: "#ffffff",
		Brand:      "#000000",
		Strong:     "#333333",
		IsDark:     false,
	}
}

type bucket struct {
	rgb   Color
	hsl   HSL
	count int
}

// ExtractPalette derives background, brand and strong colors from an image.
// The image is downsampled to a fixed grid so cost does not depend on its size.
func ExtractPalette(img image.Image) (Palette, error) {
	if img == nil || img.Bounds().Empty() {
		return Palette{}, ErrNoOpaquePixels
	}

	sample := resize.Resize(sampleSize, sampleSize, img, resize.Bilinear)
	buckets := collectBuckets(sample)
	if len(buckets) == 0 {
		return Palette{}, ErrNoOpaquePixels
	}

	return pickPalette(buckets, sampleSize*sampleSize), nil
}

// collectBuckets quantizes every opaque pixel and returns the buckets ordered
// by frequency, ties keeping first-encountered order.
func collectBuckets(img image.Image) []*bucket {
	index := make(map[Color]*bucket)
	var ordered []*bucket

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := stdcolor.NRGBAModel.Convert(img.At(x, y)).(stdcolor.NRGBA)
			if px.A < minAlpha {
				continue
			}

			key := Color{R: quantize(px.R), G: quantize(px.G), B: quantize(px.B)}
			b, ok := index[key]
			if !ok {
				b = &bucket{rgb: key, hsl: rgbToHSL(key)}
				index[key] = b
				ordered = append(ordered, b)
			}
			b.count++
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].count > ordered[j].count
	})
	return ordered
}

func quantize(v uint8) uint8 {
	return uint8(math.Round(float64(v)/quantization) * quantization)
}

func pickPalette(sorted []*bucket, total int) Palette {
	// Extreme tones beat a midtone mode when they cover enough of the image
	bg := sorted[0]
	for _, b := range sorted {
		if (b.hsl.L > 80 || b.hsl.L < 20) && float64(b.count) >= float64(total)*extremeShare {
			bg = b
			break
		}
	}
	isDark := bg.hsl.L < 50

	var brand *bucket
	for _, b := range sorted {
		if Distance(b.rgb, bg.rgb) >= brandMinDistance && b.hsl.S > brandMinSaturation {
			brand = b
			break
		}
	}
	if brand == nil {
		for _, b := range sorted {
			if Distance(b.rgb, bg.rgb) > distinctDistance {
				brand = b
				break
			}
		}
	}
	if brand == nil {
		brand = bg
	}

	strong := Black
	if isDark {
		strong = White
	}
	for _, b := range sorted {
		if Distance(b.rgb, bg.rgb) > distinctDistance && Distance(b.rgb, brand.rgb) > strongBrandDistance {
			strong = b.rgb
			break
		}
	}

	return Palette{
		Background: bg.rgb.RGBString(),
		Brand:      brand.rgb.RGBString(),
		Strong:     strong.RGBString(),
		IsDark:     isDark,
	}
}
