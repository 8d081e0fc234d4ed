// Package studio wires theme generation, the theme library and rendering
// into one application service.
package studio

import (
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/watzon/penscape/color"
	"github.com/watzon/penscape/magic"
	"github.com/watzon/penscape/render"
	"github.com/watzon/penscape/studio/config"
	"github.com/watzon/penscape/studio/image"
	"github.com/watzon/penscape/studio/library"
	"github.com/watzon/penscape/theme"
)

var (
	// ErrEmptyInput is returned when a generator is given nothing to work from.
	ErrEmptyInput = errors.New("input is empty")
	// ErrUnknownColorPreset is returned for an edit naming no known color preset.
	ErrUnknownColorPreset = errors.New("unknown color preset")
	// ErrInvalidColor is returned for an edit carrying a color that cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
)

// Library events.
const (
	EventSaved   = "theme.saved"
	EventDeleted = "theme.deleted"
	EventPinned  = "theme.pinned"
)

// Event describes a change to the theme library.
type Event struct {
	Type  string       `json:"type"`
	ID    string       `json:"id"`
	Theme *theme.Theme `json:"theme,omitempty"`
}

// Option configures a Studio.
type Option func(*Studio)

// WithGenerator replaces the theme generator.
func WithGenerator(g *magic.Generator) Option {
	return func(s *Studio) {
		s.generator = g
	}
}

// WithHTTPClient sets the client used for remote images.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Studio) {
		s.client = c
	}
}

// Studio generates, stores and renders themes
type Studio struct {
	config     *config.Config
	log        *zap.Logger
	library    *library.Store
	generator  *magic.Generator
	renderer   *render.Renderer
	imgHandler *image.Handler
	client     *http.Client

	mu        sync.RWMutex
	listeners []func(Event)
}

// New creates a new Studio backed by the library in cfg.LibraryDir
func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Studio, error) {
	lib, err := library.Open(cfg.LibraryDir, log.Named("library"))
	if lib == nil {
		return nil, fmt.Errorf("failed to open theme library: %w", err)
	}
	if err != nil {
		log.Warn("Theme library loaded with errors", zap.Error(err))
	}

	s := &Studio{
		config:     cfg,
		log:        log,
		library:    lib,
		generator:  magic.NewGenerator(),
		renderer:   render.NewRenderer(),
		imgHandler: image.NewHandler(cfg),
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Library returns the underlying theme store.
func (s *Studio) Library() *library.Store {
	return s.library
}

// Subscribe registers fn to be called after every library change.
func (s *Studio) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Studio) emit(ev Event) {
	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// GenerateFromText builds a theme from a topic or title.
func (s *Studio) GenerateFromText(text string) (theme.Theme, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return theme.Theme{}, ErrEmptyInput
	}
	t := s.generator.FromText(text)
	s.log.Debug("Generated text theme", zap.String("id", t.ID), zap.String("name", t.Name))
	return t, nil
}

// GenerateFromURL builds a theme that mimics a site.
func (s *Studio) GenerateFromURL(url string) (theme.Theme, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return theme.Theme{}, ErrEmptyInput
	}
	t := s.generator.FromURL(url)
	s.log.Debug("Generated web theme", zap.String("id", t.ID), zap.String("name", t.Name))
	return t, nil
}

// GenerateFromImage builds a theme from the colors of an uploaded image.
// Images that cannot be decoded or analyzed yield the neutral fallback palette.
func (s *Studio) GenerateFromImage(r io.Reader) (theme.Theme, color.Palette) {
	img, _, err := s.imgHandler.Read(r)
	if err != nil {
		s.log.Warn("Using fallback palette", zap.Error(err))
		p := color.FallbackPalette()
		return s.generator.FromPalette(p), p
	}
	return s.fromImage(img)
}

func (s *Studio) fromImage(img stdimage.Image) (theme.Theme, color.Palette) {
	p, err := color.ExtractPalette(img)
	if err != nil {
		s.log.Warn("Using fallback palette", zap.Error(err))
		p = color.FallbackPalette()
	}
	return s.generator.FromPalette(p), p
}

// Themes lists the library, pinned themes first.
func (s *Studio) Themes() []theme.Theme {
	return s.library.List()
}

// Theme returns one theme from the library.
func (s *Studio) Theme(id string) (theme.Theme, error) {
	return s.library.Get(id)
}

// Save stores t in the library.
func (s *Studio) Save(t theme.Theme) error {
	if err := s.library.Save(t); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	s.log.Info("Saved theme", zap.String("id", t.ID), zap.String("name", t.Name))
	s.emit(Event{Type: EventSaved, ID: t.ID, Theme: &t})
	return nil
}

// TogglePin flips the pinned flag of a theme.
func (s *Studio) TogglePin(id string) (theme.Theme, error) {
	t, err := s.library.TogglePin(id)
	if err != nil {
		return theme.Theme{}, err
	}
	s.emit(Event{Type: EventPinned, ID: id, Theme: &t})
	return t, nil
}

// Delete removes a theme from the library.
func (s *Studio) Delete(id string) error {
	if err := s.library.Delete(id); err != nil {
		return err
	}
	s.log.Info("Deleted theme", zap.String("id", id))
	s.emit(Event{Type: EventDeleted, ID: id})
	return nil
}

// Edit is a live edit of a theme's parameters. Empty fields keep the current value.
type Edit struct {
	Params      theme.Metadata `json:"params"`
	ColorPreset string         `json:"colorPreset,omitempty"`
	ResetColors bool           `json:"resetColors,omitempty"`
}

// Edit recompiles a library theme with edited parameters and saves the result.
// Editing a preset saves a new custom theme.
func (s *Studio) Edit(id string, e Edit) (theme.Theme, error) {
	t, err := s.library.Get(id)
	if err != nil {
		return theme.Theme{}, err
	}

	for _, c := range []string{e.Params.BrandColor, e.Params.BackgroundColor, e.Params.StrongColor} {
		if c == "" {
			continue
		}
		if _, ok := color.Parse(c); !ok {
			return theme.Theme{}, fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}

	initial := Params(t)
	meta := merge(initial, e.Params)
	if e.ColorPreset != "" {
		p, ok := theme.FindColorPreset(e.ColorPreset)
		if !ok {
			return theme.Theme{}, fmt.Errorf("%w: %q", ErrUnknownColorPreset, e.ColorPreset)
		}
		meta = p.Apply(meta)
	}
	if e.ResetColors {
		meta = magic.ResetColors(meta, initial)
	}

	out := s.generator.Update(t, meta)
	if err := s.Save(out); err != nil {
		return theme.Theme{}, err
	}
	return out, nil
}

// Params returns a theme's parameter set. Themes without one, such as the
// presets, get parameters read off their styles.
func Params(t theme.Theme) theme.Metadata {
	if meta, ok := t.Params(); ok {
		return meta
	}
	brand := firstNonEmpty(t.H1.Get("color"), "#333333")
	return theme.Metadata{
		Font:            theme.FontSans,
		HeadingStyle:    theme.HeadingClean,
		Texture:         theme.TextureNone,
		BrandColor:      brand,
		BackgroundColor: firstNonEmpty(t.Container.Get("background-color"), "#ffffff"),
		StrongColor:     firstNonEmpty(t.Strong.Get("color"), brand),
	}
}

func merge(base, edit theme.Metadata) theme.Metadata {
	if edit.Font != "" {
		base.Font = edit.Font
	}
	if edit.HeadingStyle != "" {
		base.HeadingStyle = edit.HeadingStyle
	}
	if edit.Texture != "" {
		base.Texture = edit.Texture
	}
	if edit.BrandColor != "" {
		base.BrandColor = edit.BrandColor
	}
	if edit.BackgroundColor != "" {
		base.BackgroundColor = edit.BackgroundColor
	}
	if edit.StrongColor != "" {
		base.StrongColor = edit.StrongColor
	}
	return base
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Render converts markdown to inline-styled markup using a library theme.
// An empty id selects the default theme.
func (s *Studio) Render(markdown, id string) (string, error) {
	if id == "" {
		id = theme.PresetPenScape
	}
	t, err := s.library.Get(id)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(markdown, t)
}

// RenderWith converts markdown using t directly.
func (s *Studio) RenderWith(markdown string, t theme.Theme) (string, error) {
	return s.renderer.Render(markdown, t)
}

// Swatch image encodings.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Swatch draws the theme's colors, optionally above the image they came from,
// and encodes the result as PNG unless format is FormatJPEG.
func (s *Studio) Swatch(t theme.Theme, source stdimage.Image, format string) ([]byte, error) {
	meta := Params(t)
	labels := []string{"Background", "Brand", "Strong"}
	values := []string{meta.BackgroundColor, meta.BrandColor, meta.StrongColor}

	cfg := color.SwatchImage{
		Labels:       labels,
		Source:       source,
		ShowHexCodes: true,
		ShowLabels:   true,
	}
	for _, v := range values {
		c, ok := color.Parse(v)
		if !ok {
			return nil, fmt.Errorf("failed to parse color %q", v)
		}
		cfg.Colors = append(cfg.Colors, c)
		cfg.HexCodes = append(cfg.HexCodes, c.Hex())
	}

	img, err := color.GenerateSwatchImage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate swatch image: %w", err)
	}
	if format == FormatJPEG {
		return s.imgHandler.ToJPEG(img)
	}
	return s.imgHandler.ToPNG(img)
}
