package image

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/h2non/filetype"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/watzon/penscape/studio/config"
)

// ErrUnsupportedFormat is returned for uploads that are not a known raster format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// maxUploadBytes caps how much of an upload is read.
const maxUploadBytes = 20 << 20

// Handler handles image processing operations
type Handler struct {
	config *config.Config
}

// NewHandler creates a new image handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		config: cfg,
	}
}

// Read decodes an image from r and scales it to the configured bounds.
func (h *Handler) Read(r io.Reader) (stdimage.Image, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	img, format, err := h.Decode(data)
	if err != nil {
		return nil, "", err
	}
	return h.Resize(img), format, nil
}

// Decode sniffs the content type of data and decodes it.
func (h *Handler) Decode(data []byte) (stdimage.Image, string, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, "", ErrUnsupportedFormat
	}

	var decode func(io.Reader) (stdimage.Image, error)
	switch kind.Extension {
	case "png":
		decode = png.Decode
	case "jpg":
		decode = jpeg.Decode
	case "gif":
		decode = gif.Decode
	case "webp":
		decode = webp.Decode
	case "bmp":
		decode = bmp.Decode
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s image: %w", kind.Extension, err)
	}
	return img, kind.Extension, nil
}

// Resize resizes an image maintaining aspect ratio
// to fit within maxWidth x maxHeight bounds
func (h *Handler) Resize(img stdimage.Image) stdimage.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= h.config.MaxWidth && height <= h.config.MaxHeight {
		return img
	}

	widthRatio := float64(h.config.MaxWidth) / float64(width)
	heightRatio := float64(h.config.MaxHeight) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	newWidth := uint(math.Max(1, float64(width)*ratio))
	newHeight := uint(math.Max(1, float64(height)*ratio))

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// ToJPEG converts an image to JPEG bytes
func (h *Handler) ToJPEG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// ToPNG converts an image to PNG bytes
func (h *Handler) ToPNG(img stdimage.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
