package library

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/watzon/penscape/theme"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir, zap.NewNop())
	require.NoError(t, err)
	return s, dir
}

func ids(themes []theme.Theme) []string {
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = t.ID
	}
	return out
}

func custom(id string) theme.Theme {
	t := theme.Minimal()
	t.ID = id
	t.Name = "Custom " + id
	t.Preset = false
	return t
}

func TestOpenSeedsPresets(t *testing.T) {
	s, dir := openTestStore(t)

	assert.Equal(t, []string{"penscape", "minimal", "neon", "editorial", "soft"}, ids(s.List()))
	_, err := os.Stat(filepath.Join(dir, "themes.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "themes.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveAndReopen(t *testing.T) {
	s, dir := openTestStore(t)

	require.NoError(t, s.Save(custom("magic-1")))
	require.NoError(t, s.Save(custom("magic-2")))
	assert.Equal(t, []string{"magic-2", "magic-1", "penscape", "minimal", "neon", "editorial", "soft"}, ids(s.List()))

	updated := custom("magic-1")
	updated.Name = "Renamed"
	require.NoError(t, s.Save(updated))

	reopened, err := Open(dir, zap.NewNop())
	require.NoError(t, err)
	got, err := reopened.Get("magic-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, updated.H2.String(), got.H2.String())
	assert.Equal(t, ids(s.List()), ids(reopened.List()))
}

func TestGetReturnsCopy(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Save(custom("a")))

	got, err := s.Get("a")
	require.NoError(t, err)
	got.H1.Set("color", "#123456")

	again, err := s.Get("a")
	require.NoError(t, err)
	assert.NotEqual(t, "#123456", again.H1.Get("color"))
}

func TestGetMissing(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPinnedFirst(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Save(custom("a")))
	require.NoError(t, s.Save(custom("b")))

	pinned, err := s.TogglePin("neon")
	require.NoError(t, err)
	assert.True(t, pinned.Pinned)
	_, err = s.TogglePin("a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "neon", "b", "penscape", "minimal", "editorial", "soft"}, ids(s.List()))

	unpinned, err := s.TogglePin("neon")
	require.NoError(t, err)
	assert.False(t, unpinned.Pinned)
	assert.Equal(t, []string{"a", "b", "penscape", "minimal", "neon", "editorial", "soft"}, ids(s.List()))

	_, err = s.TogglePin("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPresetsAreImmutable(t *testing.T) {
	s, _ := openTestStore(t)

	assert.ErrorIs(t, s.Delete("minimal"), ErrPresetImmutable)

	p, err := theme.Preset(theme.PresetNeon)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Save(p), ErrPresetImmutable)

	assert.Error(t, s.Save(theme.Theme{}))
}

func TestDelete(t *testing.T) {
	s, dir := openTestStore(t)
	require.NoError(t, s.Save(custom("a")))
	require.NoError(t, s.Delete("a"))
	assert.ErrorIs(t, s.Delete("a"), ErrNotFound)

	reopened, err := Open(dir, zap.NewNop())
	require.NoError(t, err)
	_, err = reopened.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenRestoresDefault(t *testing.T) {
	dir := t.TempDir()
	data, err := json.Marshal([]theme.Theme{custom("a")})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes.json"), data, 0o644))

	s, err := Open(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"penscape", "a"}, ids(s.List()))
}

func TestOpenSkipsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	a, err := json.Marshal(custom("a"))
	require.NoError(t, err)
	data := `[` + string(a) + `, {"name": "no id"}, ` + string(a) + `, {"h1": 5}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes.json"), []byte(data), 0o644))

	s, err := Open(dir, zap.NewNop())
	require.Error(t, err)
	require.NotNil(t, s)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Equal(t, []string{"penscape", "a"}, ids(s.List()))
}

func TestOpenCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes.json"), []byte("{not json"), 0o644))

	s, err := Open(dir, zap.NewNop())
	require.Error(t, err)
	require.NotNil(t, s)
	assert.Len(t, s.List(), 5)
}

func TestExportName(t *testing.T) {
	assert.Equal(t, "image-inspired.css", ExportName(theme.Theme{ID: "img-1", Name: "Image Inspired"}))
	assert.Equal(t, "img-1.css", ExportName(theme.Theme{ID: "img-1"}))
	assert.Equal(t, "theme.css", ExportName(theme.Theme{}))
}
