package color

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	swatchSize   = 1200
	baseFontSize = 42
	minFontSize  = 24
)

// SwatchImage represents configuration for rendering a theme swatch
type SwatchImage struct {
	Colors   []Color
	Labels   []string
	HexCodes []string
	Source   image.Image // Optional image the colors came from

	ShowHexCodes bool
	ShowLabels   bool
}

// ToRGBA converts our Color to color.RGBA
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// GenerateSwatchImage draws one vertical bar per color, optionally below the source image
func GenerateSwatchImage(cfg SwatchImage) (image.Image, error) {
	numColors := len(cfg.Colors)
	if numColors == 0 {
		return nil, fmt.Errorf("no colors provided")
	}

	dc := gg.NewContext(swatchSize, swatchSize)
	dc.SetColor(color.White)
	dc.Clear()

	regularFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	boldFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	fontSize := baseFontSize
	if numColors > 5 {
		fontSize = max(baseFontSize*5/numColors, minFontSize)
	}
	regularFace := truetype.NewFace(regularFont, &truetype.Options{Size: float64(fontSize)})
	boldFace := truetype.NewFace(boldFont, &truetype.Options{Size: float64(fontSize)})

	barHeight := float64(swatchSize)
	startY := 0.0
	if cfg.Source != nil {
		drawSourceImage(dc, cfg.Source)
		barHeight = float64(swatchSize) / 4
		startY = float64(swatchSize) - barHeight
	}
	barWidth := float64(swatchSize) / float64(numColors)

	for i, c := range cfg.Colors {
		x := float64(i) * barWidth

		dc.SetColor(c.ToRGBA())
		dc.DrawRectangle(x, startY, barWidth, barHeight)
		dc.Fill()

		dc.SetColor(getContrastColor(c))
		hexY := startY + barHeight*0.33
		labelY := hexY + float64(fontSize)*1.4
		lineHeight := float64(fontSize) * 1.2

		if cfg.ShowHexCodes && i < len(cfg.HexCodes) {
			dc.SetFontFace(boldFace)
			hexText := strings.TrimPrefix(cfg.HexCodes[i], "#")
			textWidth, _ := dc.MeasureString(hexText)
			dc.DrawString(hexText, x+(barWidth-textWidth)/2, hexY)
		}

		if cfg.ShowLabels && i < len(cfg.Labels) {
			dc.SetFontFace(regularFace)
			textY := labelY
			for _, line := range wrapText(dc, cfg.Labels[i], barWidth*0.9) {
				textWidth, _ := dc.MeasureString(line)
				dc.DrawString(line, x+(barWidth-textWidth)/2, textY)
				textY += lineHeight
			}
		}
	}

	return dc.Image(), nil
}

// drawSourceImage fills the top three quarters of the context with a centered 4:3 crop
func drawSourceImage(dc *gg.Context, img image.Image) {
	bounds := img.Bounds()
	imgWidth := float64(bounds.Dx())
	imgHeight := float64(bounds.Dy())

	var cropWidth, cropHeight float64
	if imgWidth/imgHeight > 4.0/3.0 {
		cropHeight = imgHeight
		cropWidth = cropHeight * 4.0 / 3.0
	} else {
		cropWidth = imgWidth
		cropHeight = cropWidth * 3.0 / 4.0
	}

	cropX := (imgWidth - cropWidth) / 2
	cropY := (imgHeight - cropHeight) / 2

	croppedDC := gg.NewContext(int(cropWidth), int(cropHeight))
	croppedDC.DrawImage(img, int(-cropX)-bounds.Min.X, int(-cropY)-bounds.Min.Y)

	availableHeight := float64(swatchSize) * 3.0 / 4.0
	availableWidth := float64(swatchSize)
	scale := math.Max(availableWidth/cropWidth, availableHeight/cropHeight)

	finalWidth := cropWidth * scale
	finalHeight := cropHeight * scale
	x := (availableWidth - finalWidth) / 2
	y := (availableHeight - finalHeight) / 2

	scaledDC := gg.NewContext(int(finalWidth), int(finalHeight))
	scaledDC.Scale(scale, scale)
	scaledDC.DrawImage(croppedDC.Image(), 0, 0)

	dc.DrawImage(scaledDC.Image(), int(x), int(y))
}

// getContrastColor returns white or black depending on which provides better contrast
func getContrastColor(c Color) color.Color {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	luminance := 0.2126*math.Pow(r, 2.2) + 0.7152*math.Pow(g, 2.2) + 0.0722*math.Pow(b, 2.2)

	if luminance > 0.5 {
		return color.Black
	}
	return color.White
}

// wrapText wraps text to fit within a given width, breaking on word boundaries
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine []string
	var currentLineWidth float64

	// Use a smaller space width for tighter text
	spaceWidth, _ := dc.MeasureString(" ")
	spaceWidth *= 0.8

	for _, word := range words {
		wordWidth, _ := dc.MeasureString(word)

		if len(currentLine) == 0 {
			currentLine = []string{word}
			currentLineWidth = wordWidth
			continue
		}

		newLineWidth := currentLineWidth + spaceWidth + wordWidth
		if newLineWidth <= maxWidth {
			currentLine = append(currentLine, word)
			currentLineWidth = newLineWidth
		} else {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{word}
			currentLineWidth = wordWidth
		}
	}

	return append(lines, strings.Join(currentLine, " "))
}
