package shell

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path"
	"strings"

	"github.com/bosco-l/multipage-dashboard/pkg/chart"
	"github.com/bosco-l/multipage-dashboard/pkg/layout"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const maxRequestBytes = 1 << 20

// Endpoints relative to the prefix. Page paths cannot start with an underscore.
const (
	UpdatePath = "/_update"
	LayoutPath = "/_layout/"
	PagesPath  = "/_pages"
	ExportPath = "/_export/"
	SocketPath = "/_ws"
	HealthPath = "/_health"
)

type updateRequest struct {
	ID    string          `json:"id"`
	Value json.RawMessage `json:"value"`
}

type errorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

type pageInfo struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (s *Shell) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(UpdatePath, s.handleUpdate)
	mux.HandleFunc(LayoutPath, s.handleLayout)
	mux.HandleFunc(PagesPath, s.handlePages)
	mux.HandleFunc(ExportPath, s.handleExport)
	// Without these the mux would redirect to the slashed path, which lies
	// outside of the prefix once stripped.
	mux.HandleFunc(strings.TrimSuffix(LayoutPath, "/"), s.handlePage)
	mux.HandleFunc(strings.TrimSuffix(ExportPath, "/"), s.handlePage)
	mux.HandleFunc(SocketPath, s.handleWebSocket)
	mux.HandleFunc(HealthPath, s.handleHealth)
	mux.HandleFunc("/", s.handlePage)
	return mux
}

// ServeHTTP serves requests with the prefix already stripped from the path.
// The path is cleaned here so that the mux never answers with a redirect.
func (s *Shell) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.URL.Path = cleanPath(r.URL.Path)
	r.URL.RawPath = ""
	s.mux.ServeHTTP(w, r)
}

// cleanPath roots and cleans p, keeping a trailing slash.
func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	cleaned := path.Clean(p)
	if strings.HasSuffix(p, "/") && cleaned != "/" {
		cleaned += "/"
	}
	return cleaned
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, method := range methods {
		if r.Method == method {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	return false
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Cannot encode response: %v", err)
	}
}

// statusOf maps dispatch and resolve errors to HTTP statuses.
func statusOf(err error) int {
	switch errors.Cause(err) {
	case ErrRouteNotFound, ErrDispatchMismatch:
		return http.StatusNotFound
	case ErrBadControlValue:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Shell) handlePage(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	view := s.newView(r.URL.Path)
	status := http.StatusOK
	d, err := s.Resolve(r.URL.Path)
	if err != nil {
		status = statusOf(err)
		view.Title = "404 - " + s.config.Title
	} else {
		view.Title = d.Title + " - " + s.config.Title
		view.Content, err = layout.HTML(d.Layout())
		if err != nil {
			log.Errorf("Cannot render page %q: %v", d.Path, err)
			http.Error(w, "cannot render page", http.StatusInternalServerError)
			return
		}
		view.Initial = s.Initial(d)
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, view); err != nil {
		log.Errorf("Cannot render dashboard shell: %v", err)
		http.Error(w, "cannot render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Shell) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}

	var request updateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := decoder.Decode(&request); err != nil || request.ID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expected {\"id\": <control>, \"value\": <value>}"})
		return
	}

	update, err := s.Dispatch(request.ID, request.Value)
	if err != nil {
		writeJSON(w, statusOf(err), errorResponse{ID: request.ID, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, update)
}

func (s *Shell) handleLayout(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	d, err := s.Resolve(strings.TrimPrefix(r.URL.Path, LayoutPath))
	if err != nil {
		writeJSON(w, statusOf(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, d.Layout())
}

func (s *Shell) handlePages(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	pages := make([]pageInfo, 0, len(s.pages))
	for _, d := range s.pages {
		pages = append(pages, pageInfo{Path: d.Path, Name: d.Name, Title: d.Title, URL: s.URL(d)})
	}
	writeJSON(w, http.StatusOK, pages)
}

// handleExport renders the chart bound to a control as PNG. Value defaults
// to the initial value of the control.
func (s *Shell) handleExport(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	file := strings.TrimPrefix(r.URL.Path, ExportPath)
	controlID := strings.TrimSuffix(file, ".png")
	d, ok := s.owner(controlID)
	if !ok || controlID == file {
		writeJSON(w, http.StatusNotFound, errorResponse{ID: controlID, Error: "no chart bound to " + file})
		return
	}

	value := json.RawMessage(r.URL.Query().Get("value"))
	if len(value) == 0 {
		var err error
		if value, err = d.Default(controlID); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{ID: controlID, Error: err.Error()})
			return
		}
	}

	update, err := s.Dispatch(controlID, value)
	if err != nil {
		writeJSON(w, statusOf(err), errorResponse{ID: controlID, Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, update.Figure, chart.DefaultWidth, chart.DefaultHeight); err != nil {
		log.Errorf("Cannot export chart %q: %v", update.Output, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{ID: controlID, Error: "cannot render chart"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Shell) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
