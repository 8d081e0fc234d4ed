package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheetRoundTrip(t *testing.T) {
	src := Minimal()
	css := src.Stylesheet()
	assert.Contains(t, css, "blockquote {")
	assert.Contains(t, css, "a {")

	var empty Theme
	back, err := ImportStylesheet(empty, css)
	require.NoError(t, err)

	assert.Equal(t, "1px solid #eee", back.H2.Get("border-bottom"))
	assert.Equal(t, "#0066cc", back.Link.Get("color"))
	assert.Equal(t, "20px 0", back.Blockquote.Get("margin"))
	assert.Equal(t, "#ffffff", back.Container.Get("background-color"))
	assert.Equal(t, "100%", back.Image.Get("max-width"))
}

func TestImportStylesheetSelectors(t *testing.T) {
	css := `
section { background-color: #101010; }
.article h4, .article h5 { color: #ff0000; }
b { font-weight: 700; }
a:hover { color: #00ff00; }
video { width: 100%; }
@media (max-width: 600px) { p { font-size: 12px; } }
`
	out, err := ImportStylesheet(Minimal(), css)
	require.NoError(t, err)

	assert.Equal(t, "#101010", out.Container.Get("background-color"))
	assert.Equal(t, "16px", out.Container.Get("padding"))
	assert.Equal(t, "#ff0000", out.H3.Get("color"))
	assert.Equal(t, "700", out.Strong.Get("font-weight"))
	assert.Equal(t, "#00ff00", out.Link.Get("color"))
	assert.Equal(t, "16px", out.Paragraph.Get("font-size"))
	assert.Nil(t, out.Metadata)
}

func TestImportStylesheetDropsParams(t *testing.T) {
	compiled := Compile(Minimal(), lightMeta())
	out, err := ImportStylesheet(compiled, "h1 { color: #123456; }")
	require.NoError(t, err)

	assert.Equal(t, "#123456", out.H1.Get("color"))
	assert.Nil(t, out.Metadata)
	assert.NotNil(t, compiled.Metadata)
}
