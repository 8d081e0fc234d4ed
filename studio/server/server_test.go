package server

import (
	"bytes"
	"encoding/json"
	stdimage "image"
	stdcolor "image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/watzon/penscape/magic"
	"github.com/watzon/penscape/studio"
	"github.com/watzon/penscape/studio/config"
	"github.com/watzon/penscape/theme"
)

type zeroSource struct{}

func (zeroSource) Intn(n int) int   { return 0 }
func (zeroSource) Float64() float64 { return 0.1 }

func newTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	cfg := config.DefaultConfig().WithLibraryDir(t.TempDir())
	gen := magic.NewGenerator(
		magic.WithSource(zeroSource{}),
		magic.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
	)
	st, err := studio.New(cfg, zap.NewNop(), studio.WithGenerator(gen))
	require.NoError(t, err)

	s := New(st, zap.NewNop(), opts...)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func do(t *testing.T, method, url, contentType string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func postJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return do(t, http.MethodPost, url, "application/json", bytes.NewReader(data))
}

func decodeTheme(t *testing.T, resp *http.Response) theme.Theme {
	t.Helper()
	var out theme.Theme
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestListAndGetThemes(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/api/themes", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []theme.Theme
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 5)
	assert.Equal(t, "penscape", list[0].ID)

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/neon", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "neon", decodeTheme(t, resp).ID)

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStylesheet(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/api/themes/minimal/stylesheet", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".css")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "blockquote")
}

func TestSwatch(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/api/themes/soft/swatch", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	_, err := png.Decode(resp.Body)
	require.NoError(t, err)

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/soft/swatch?format=jpeg", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, err = jpeg.Decode(resp.Body)
	require.NoError(t, err)

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/missing/swatch", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRender(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/render", map[string]string{"markdown": "# Hi", "themeId": "minimal"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out renderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, strings.HasPrefix(out.HTML, "<section style="))

	inline := theme.Theme{H1: theme.NewStyle("color", "red")}
	resp = postJSON(t, ts.URL+"/api/render", renderRequest{Markdown: "# Hi", Theme: &inline})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, strings.HasPrefix(out.HTML, `<section><h1 style="color: red;">Hi</h1>`), out.HTML)

	resp = do(t, http.MethodPost, ts.URL+"/api/render", "application/json", strings.NewReader("{"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateText(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/generate/text", generateRequest{Text: "科技"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "magic-1700000000000", decodeTheme(t, resp).ID)

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/magic-1700000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/generate/text?save=true", generateRequest{Text: "科技"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/magic-1700000000000", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/generate/text", generateRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateURL(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/generate/url", generateRequest{URL: "https://github.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeTheme(t, resp)
	assert.Equal(t, "web-1700000000000", out.ID)
	assert.Equal(t, "#58a6ff", out.Metadata.BrandColor)
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, stdcolor.Black)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGenerateImage(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/generate/image", "image/png", bytes.NewReader(testPNG(t)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeTheme(t, resp)
	assert.Equal(t, "img-1700000000000", out.ID)
	assert.Equal(t, theme.HeadingGradient, out.Metadata.HeadingStyle)

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	fw, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(testPNG(t))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp = do(t, http.MethodPost, ts.URL+"/api/generate/image", mw.FormDataContentType(), &form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, theme.HeadingGradient, decodeTheme(t, resp).Metadata.HeadingStyle)

	resp = do(t, http.MethodPost, ts.URL+"/api/generate/image", "text/plain", strings.NewReader("nope"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "#ffffff", decodeTheme(t, resp).Metadata.BackgroundColor)
}

func TestGenerateImageMultipartLimit(t *testing.T) {
	_, ts := newTestServer(t, WithMaxBodyBytes(512))

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	require.NoError(t, mw.WriteField("note", strings.Repeat("x", 4096)))
	fw, err := mw.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(testPNG(t))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp := do(t, http.MethodPost, ts.URL+"/api/generate/image", mw.FormDataContentType(), &form)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEditRejectsInvalidColor(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/themes/minimal/edit", studio.Edit{Params: theme.Metadata{BackgroundColor: "not-a-color"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/api/themes/minimal/edit", studio.Edit{Params: theme.Metadata{BrandColor: "red", BackgroundColor: "navy"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id := decodeTheme(t, resp).ID

	resp = do(t, http.MethodGet, ts.URL+"/api/themes/"+id+"/swatch", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, err := png.Decode(resp.Body)
	require.NoError(t, err)
}

func TestEditPinDelete(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/generate/url?save=1", generateRequest{URL: "apple.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeTheme(t, resp).ID

	resp = postJSON(t, ts.URL+"/api/themes/"+id+"/edit", studio.Edit{ColorPreset: "Dark"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "#1a1a1a", decodeTheme(t, resp).Metadata.BackgroundColor)

	resp = postJSON(t, ts.URL+"/api/themes/"+id+"/edit", studio.Edit{ColorPreset: "Nope"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/api/themes/"+id+"/pin", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decodeTheme(t, resp).Pinned)

	resp = do(t, http.MethodDelete, ts.URL+"/api/themes/"+id, "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodDelete, ts.URL+"/api/themes/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, ts.URL+"/api/themes/penscape", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebsocketRender(t *testing.T) {
	_, ts := newTestServer(t)
	conn := dialWS(t, ts)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "render", "markdown": "**x**", "themeId": "minimal"}))
	var reply wsReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "rendered", reply.Type)
	assert.Contains(t, reply.HTML, "<strong style=")

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "render", "markdown": "x", "themeId": "missing"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "error", reply.Type)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "shout"}))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "error", reply.Type)
	assert.Contains(t, reply.Error, "shout")
}

func TestWebsocketWatchFiltersEvents(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dialWS(t, ts)
	require.Eventually(t, func() bool { return s.Hub().Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "watch", "themeId": "soft"}))
	var reply wsReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "watching", reply.Type)
	assert.Equal(t, "soft", reply.ThemeID)

	resp := do(t, http.MethodPost, ts.URL+"/api/themes/neon/pin", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, http.MethodPost, ts.URL+"/api/themes/soft/pin", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var ev studio.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "soft", ev.ID)
}

func TestWebsocketBroadcastsLibraryEvents(t *testing.T) {
	s, ts := newTestServer(t)
	conn := dialWS(t, ts)

	require.Eventually(t, func() bool { return s.Hub().Len() == 1 }, 5*time.Second, 10*time.Millisecond)

	resp := do(t, http.MethodPost, ts.URL+"/api/themes/neon/pin", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var ev studio.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, studio.EventPinned, ev.Type)
	assert.Equal(t, "neon", ev.ID)
	require.NotNil(t, ev.Theme)
	assert.True(t, ev.Theme.Pinned)

	conn.Close()
	require.Eventually(t, func() bool { return s.Hub().Len() == 0 }, 5*time.Second, 10*time.Millisecond)
}
