package image

import (
	"bytes"
	stdimage "image"
	stdcolor "image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/watzon/penscape/studio/config"
)

func solid(w, h int, c stdcolor.Color) *stdimage.NRGBA {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newTestHandler() *Handler {
	return NewHandler(config.DefaultConfig().WithMaxSize(100, 50))
}

func TestDecodeFormats(t *testing.T) {
	src := solid(8, 8, stdcolor.NRGBA{R: 200, G: 10, B: 10, A: 255})
	h := newTestHandler()

	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, src))
	jpegData, err := h.ToJPEG(src)
	require.NoError(t, err)
	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, src, nil))
	var bmpBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, src))

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngBuf.Bytes(), "png"},
		{"jpeg", jpegData, "jpg"},
		{"gif", gifBuf.Bytes(), "gif"},
		{"bmp", bmpBuf.Bytes(), "bmp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := h.Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
			assert.Equal(t, 8, img.Bounds().Dx())
		})
	}
}

func TestDecodeRejectsUnknown(t *testing.T) {
	h := newTestHandler()

	_, _, err := h.Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, _, err = h.Decode(nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// a PDF header sniffs fine but is not a raster image
	_, _, err = h.Decode([]byte("%PDF-1.7\n"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeCorruptPNG(t *testing.T) {
	data := []byte("\x89PNG\r\n\x1a\n garbage")
	_, _, err := newTestHandler().Decode(data)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestResize(t *testing.T) {
	h := newTestHandler()

	small := solid(40, 40, stdcolor.White)
	assert.Same(t, small, h.Resize(small))

	wide := h.Resize(solid(400, 100, stdcolor.White))
	assert.Equal(t, 100, wide.Bounds().Dx())
	assert.Equal(t, 25, wide.Bounds().Dy())

	tall := h.Resize(solid(100, 400, stdcolor.White))
	assert.Equal(t, 12, tall.Bounds().Dx())
	assert.Equal(t, 50, tall.Bounds().Dy())
}

func TestRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(300, 300, stdcolor.Black)))

	img, format, err := newTestHandler().Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestToPNG(t *testing.T) {
	data, err := newTestHandler().ToPNG(solid(4, 4, stdcolor.White))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}
