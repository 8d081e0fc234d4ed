package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ffffff", White, true},
		{"#FFF", White, true},
		{"#0d1117", Color{R: 13, G: 17, B: 23}, true},
		{"rgb(10, 20, 30)", Color{R: 10, G: 20, B: 30}, true},
		{"rgba(10, 20, 30, 0.5)", Color{R: 10, G: 20, B: 30}, true},
		{"hsl(0, 100%, 50%)", Color{R: 255, G: 0, B: 0}, true},
		{"black", Black, true},
		{"navy", Color{R: 0, G: 0, B: 128}, true},
		{"Teal", Color{R: 0, G: 128, B: 128}, true},
		{"transparent", Color{}, false},
		{"#12", Color{}, false},
		{"rgb(300, 0, 0)", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark("#0d1117"))
	assert.True(t, IsDark("#000"))
	assert.True(t, IsDark("rgb(40, 40, 40)"))
	assert.True(t, IsDark("hsl(200, 20%, 10%)"))
	assert.False(t, IsDark("#ffffff"))
	assert.False(t, IsDark("#f9f9f7"))
	assert.False(t, IsDark("hsl(200, 20%, 50%)"))
	assert.True(t, IsDark("navy"))
	assert.False(t, IsDark("ivory"))
	assert.False(t, IsDark("not-a-color"))
}

func TestBrightnessThreshold(t *testing.T) {
	// 127 grey sits just under the HSP threshold, 128 just over
	assert.Less(t, Brightness(Color{R: 127, G: 127, B: 127}), 127.5)
	assert.GreaterOrEqual(t, Brightness(Color{R: 128, G: 128, B: 128}), 127.5)
	assert.True(t, IsDark("#7f7f7f"))
	assert.False(t, IsDark("#808080"))
}

func TestAlpha(t *testing.T) {
	assert.Equal(t, "hsla(200, 80%, 50%, 0.5)", Alpha("hsl(200, 80%, 50%)", 0.5))
	assert.Equal(t, "rgba(1, 2, 3, 0.2)", Alpha("rgb(1, 2, 3)", 0.2))
	assert.Equal(t, "rgba(88, 166, 255, 0.15)", Alpha("#58a6ff", 0.15))
	assert.Equal(t, "rgba(255, 255, 255, 0.05)", Alpha("#fff", 0.05))
	assert.Equal(t, "rgba(1, 2, 3, 0.4)", Alpha("rgba(1, 2, 3, 0.9)", 0.4))
	assert.Equal(t, "transparent", Alpha("", 0.4))
	assert.Equal(t, "currentColor", Alpha("currentColor", 0.4))
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black, {R: 192, G: 57, B: 43}, {R: 7, G: 193, B: 96}} {
		got := c.HSL().RGB()
		require.Equal(t, c, got)
	}
}

func TestRGBToHSLSaturation(t *testing.T) {
	// dark saturated colors use d/(max+min)
	hsl := Color{R: 128, G: 0, B: 0}.HSL()
	assert.InDelta(t, 0, hsl.H, 0.001)
	assert.InDelta(t, 100, hsl.S, 0.001)
	assert.InDelta(t, 25.1, hsl.L, 0.1)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 0, Distance(White, White), 0)
	assert.InDelta(t, 441.67, Distance(White, Black), 0.01)
}

func TestFormatting(t *testing.T) {
	c := Color{R: 88, G: 166, B: 255}
	assert.Equal(t, "#58a6ff", c.Hex())
	assert.Equal(t, "rgb(88, 166, 255)", c.RGBString())
	assert.Equal(t, "hsl(200, 80%, 50%)", HSLString(200, 80, 50))
}
