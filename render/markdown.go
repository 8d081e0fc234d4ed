// Package render turns markdown into markup whose styling lives entirely in
// inline style attributes.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/watzon/penscape/theme"
)

// Renderer converts markdown to inline-styled markup.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GitHub flavored markdown enabled.
// Raw HTML in the source is passed through so authors can add their own
// inline styles.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// HTML converts markdown to plain, unstyled HTML.
func (r *Renderer) HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Parse converts markdown to a document fragment.
func (r *Renderer) Parse(src string) ([]*html.Node, error) {
	out, err := r.HTML(src)
	if err != nil {
		return nil, err
	}
	return ParseHTML(out)
}

// ParseHTML parses an HTML fragment as if it were the content of a <div>.
func ParseHTML(src string) ([]*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return nodes, nil
}

// Render converts markdown to markup styled with t.
func (r *Renderer) Render(src string, t theme.Theme) (string, error) {
	nodes, err := r.Parse(src)
	if err != nil {
		return "", err
	}
	return Serialize(Inject(nodes, t))
}

// Serialize writes a node tree as HTML.
func Serialize(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return buf.String(), nil
}
