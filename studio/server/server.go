// Package server exposes the studio over HTTP and a websocket preview channel.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/watzon/penscape/studio"
	"github.com/watzon/penscape/studio/image"
	"github.com/watzon/penscape/studio/library"
	"github.com/watzon/penscape/theme"
)

const maxBodyBytes = 20 << 20

// Server serves the studio API.
type Server struct {
	studio   *studio.Studio
	log      *zap.Logger
	hub      *Hub
	upgrader websocket.Upgrader
	maxBody  int64
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBody = n
	}
}

// New creates a server and subscribes its hub to library events.
func New(st *studio.Studio, log *zap.Logger, opts ...Option) *Server {
	s := &Server{
		studio:  st,
		log:     log,
		hub:     NewHub(),
		maxBody: maxBodyBytes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	st.Subscribe(func(ev studio.Event) {
		if err := s.hub.Broadcast(ev); err != nil {
			s.log.Warn("Broadcast failed", zap.String("event", ev.Type), zap.Error(err))
		}
	})
	return s
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Register mounts the API routes on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/themes", s.handleListThemes)
	mux.HandleFunc("GET /api/themes/{id}", s.handleGetTheme)
	mux.HandleFunc("GET /api/themes/{id}/stylesheet", s.handleStylesheet)
	mux.HandleFunc("GET /api/themes/{id}/swatch", s.handleSwatch)
	mux.HandleFunc("POST /api/themes/{id}/edit", s.handleEdit)
	mux.HandleFunc("POST /api/themes/{id}/pin", s.handlePin)
	mux.HandleFunc("DELETE /api/themes/{id}", s.handleDelete)
	mux.HandleFunc("POST /api/render", s.handleRender)
	mux.HandleFunc("POST /api/generate/text", s.handleGenerateText)
	mux.HandleFunc("POST /api/generate/url", s.handleGenerateURL)
	mux.HandleFunc("POST /api/generate/image", s.handleGenerateImage)
	mux.HandleFunc("GET /ws", s.handleWS)
}

// Handler returns a mux with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------- library ----------

func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.studio.Themes())
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.studio.Theme(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	t, err := s.studio.Theme(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+library.ExportName(t)+`"`)
	io.WriteString(w, t.Stylesheet())
}

// handleSwatch serves the theme colors as a PNG, or a JPEG with ?format=jpeg.
func (s *Server) handleSwatch(w http.ResponseWriter, r *http.Request) {
	t, err := s.studio.Theme(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	format, contentType := studio.FormatPNG, "image/png"
	if r.URL.Query().Get("format") == studio.FormatJPEG {
		format, contentType = studio.FormatJPEG, "image/jpeg"
	}
	data, err := s.studio.Swatch(t, nil, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var req studio.Edit
	if !s.decode(w, r, &req) {
		return
	}
	t, err := s.studio.Edit(r.PathValue("id"), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handlePin(w http.ResponseWriter, r *http.Request) {
	t, err := s.studio.TogglePin(r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.studio.Delete(r.PathValue("id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- render ----------

type renderRequest struct {
	Markdown string       `json:"markdown"`
	ThemeID  string       `json:"themeId,omitempty"`
	Theme    *theme.Theme `json:"theme,omitempty"`
}

type renderResponse struct {
	HTML string `json:"html"`
}

func (s *Server) render(req renderRequest) (string, error) {
	if req.Theme != nil {
		return s.studio.RenderWith(req.Markdown, *req.Theme)
	}
	return s.studio.Render(req.Markdown, req.ThemeID)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.render(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{HTML: out})
}

// ---------- generate ----------

type generateRequest struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// finishGenerate stores t when the request asks for it and writes it out.
func (s *Server) finishGenerate(w http.ResponseWriter, r *http.Request, t theme.Theme) {
	if save, _ := strconv.ParseBool(r.URL.Query().Get("save")); save {
		if err := s.studio.Save(t); err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleGenerateText(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, &req) {
		return
	}
	t, err := s.studio.GenerateFromText(req.Text)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.finishGenerate(w, r, t)
}

func (s *Server) handleGenerateURL(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, &req) {
		return
	}
	t, err := s.studio.GenerateFromURL(req.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.finishGenerate(w, r, t)
}

// handleGenerateImage accepts either a raw image body or a multipart form
// with an "image" file field.
func (s *Server) handleGenerateImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	body := io.Reader(r.Body)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := r.FormFile("image")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing image file"})
			return
		}
		defer f.Close()
		body = f
	}
	t, _ := s.studio.GenerateFromImage(body)
	s.finishGenerate(w, r, t)
}

// ---------- websocket ----------

type wsMessage struct {
	Type string `json:"type"`
	renderRequest
}

type wsReply struct {
	Type    string `json:"type"`
	ThemeID string `json:"themeId,omitempty"`
	HTML    string `json:"html,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleWS upgrades to a websocket that receives library events and answers
// "render" messages with rendered markup.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	c := s.hub.Add(conn)
	defer func() {
		s.hub.Remove(conn)
		conn.Close()
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("Websocket closed", zap.Error(err))
			}
			return
		}

		reply := wsReply{Type: "rendered"}
		switch msg.Type {
		case "watch":
			s.hub.Watch(conn, msg.ThemeID)
			reply = wsReply{Type: "watching", ThemeID: msg.ThemeID}
		case "render":
			out, err := s.render(msg.renderRequest)
			if err != nil {
				reply = wsReply{Type: "error", Error: err.Error()}
			} else {
				reply.HTML = out
			}
		default:
			reply = wsReply{Type: "error", Error: "unknown message type " + strconv.Quote(msg.Type)}
		}
		if err := c.writeReply(reply); err != nil {
			return
		}
	}
}

// ---------- helpers ----------

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody)).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, library.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, library.ErrPresetImmutable):
		status = http.StatusForbidden
	case errors.Is(err, studio.ErrEmptyInput), errors.Is(err, studio.ErrUnknownColorPreset),
		errors.Is(err, studio.ErrInvalidColor), errors.Is(err, image.ErrUnsupportedFormat):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
