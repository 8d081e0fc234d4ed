package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroups(t *testing.T) {
	groups := Groups()
	require.Len(t, groups, 16)
	assert.Equal(t, GroupContainer, groups[0])
	assert.Equal(t, GroupImage, groups[15])

	for _, g := range groups {
		back, ok := ParseGroup(g.String())
		require.True(t, ok, g.String())
		assert.Equal(t, g, back)
	}

	_, ok := ParseGroup("table")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Group(99).String())
}

func TestThemeWithStyle(t *testing.T) {
	base := Minimal()
	out := base.WithStyle(GroupCode, NewStyle("color", "red"))

	assert.Equal(t, "color: red;", out.Code.String())
	assert.Equal(t, "#d63384", base.Code.Get("color"))
}

func TestThemeCloneIsDeep(t *testing.T) {
	base := Compile(Minimal(), lightMeta())
	cp := base.Clone()
	cp.Metadata.BrandColor = "#000000"
	cp.H1.Set("color", "#000000")

	assert.Equal(t, "#0066cc", base.Metadata.BrandColor)
	assert.Equal(t, "#0066cc", base.H1.Get("color"))
}

func TestThemeJSON(t *testing.T) {
	in := Compile(Minimal(), lightMeta())
	in.ID = "magic-1"
	in.Preset = false
	in.Pinned = true

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, true, raw["isPinned"])
	assert.NotContains(t, raw, "isPreset")
	meta := raw["metadata"].(map[string]any)
	assert.Equal(t, "left-border", meta["h2StyleId"])
	assert.Equal(t, "#ffffff", meta["bgColor"])

	var back Theme
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, in, back)
}

func TestPresets(t *testing.T) {
	all := Presets()
	require.Len(t, all, 5)

	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
		assert.True(t, p.Preset, p.ID)
		assert.True(t, IsPresetID(p.ID))
		for _, g := range Groups() {
			assert.NotZero(t, p.Style(g).Len(), "%s %s", p.ID, g)
		}
	}
	assert.Equal(t, []string{"penscape", "minimal", "neon", "editorial", "soft"}, ids)

	pen, err := Preset(PresetPenScape)
	require.NoError(t, err)
	assert.Equal(t, "'Noto Serif SC', serif", pen.H2.Get("font-family"))
	assert.Equal(t, "transparent", pen.H2.Get("background-color"))

	soft, err := Preset(PresetSoft)
	require.NoError(t, err)
	assert.Equal(t, "#fff", soft.Blockquote.Get("background-color"))
	assert.Equal(t, "15px", soft.Blockquote.Get("font-size"))

	_, err = Preset("retro")
	assert.Error(t, err)
	assert.False(t, IsPresetID("retro"))
}

func TestPresetsAreIndependent(t *testing.T) {
	a := Minimal()
	a.H1.Set("color", "red")
	assert.Equal(t, "#111", Minimal().H1.Get("color"))
}
