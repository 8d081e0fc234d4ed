package color

import (
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSwatchImage(t *testing.T) {
	img, err := GenerateSwatchImage(SwatchImage{
		Colors:       []Color{White, {R: 192, G: 57, B: 43}, Black},
		Labels:       []string{"background", "brand", "strong"},
		HexCodes:     []string{"#ffffff", "#c0392b", "#000000"},
		ShowHexCodes: true,
		ShowLabels:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, swatchSize, swatchSize), img.Bounds())

	// bottom-left corner is inside the first bar and far from any text
	r, g, b, _ := img.At(1, swatchSize-2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(swatchSize-2, swatchSize-2).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
}

func TestGenerateSwatchImageWithSource(t *testing.T) {
	src := solidImage(80, 40, stdcolor.NRGBA{R: 0, G: 0, B: 255, A: 255})
	img, err := GenerateSwatchImage(SwatchImage{
		Colors: []Color{{R: 255}},
		Source: src,
	})
	require.NoError(t, err)

	r, g, b, _ := img.At(swatchSize/2, swatchSize/4).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(swatchSize/2, swatchSize-2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
}

func TestGenerateSwatchImageNoColors(t *testing.T) {
	_, err := GenerateSwatchImage(SwatchImage{})
	require.Error(t, err)
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, stdcolor.Black, getContrastColor(White))
	assert.Equal(t, stdcolor.White, getContrastColor(Black))
}
