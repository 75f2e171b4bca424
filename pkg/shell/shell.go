// Package shell composes registered pages into one dashboard. It resolves
// URL paths to pages, renders the navigation bar and routes control updates
// to the page owning the control.
package shell

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/bosco-l/multipage-dashboard/pkg/chart"
	"github.com/bosco-l/multipage-dashboard/pkg/conf"
	"github.com/bosco-l/multipage-dashboard/pkg/layout"
	"github.com/bosco-l/multipage-dashboard/pkg/page"
	errcollection "github.com/bosco-l/multipage-dashboard/pkg/utils/err_collection"
	"github.com/bosco-l/multipage-dashboard/pkg/utils/errutil"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const name = "dashboard"

var (
	// ErrRouteNotFound is returned when no page is registered under a path.
	ErrRouteNotFound = errors.New("page not found")
	// ErrDispatchMismatch is returned when no page owns the updated control.
	ErrDispatchMismatch = errors.New("no callback bound to control")
	// ErrBadControlValue is returned when a control value cannot be decoded.
	ErrBadControlValue = page.ErrBadControlValue
)

// Config of the dashboard shell.
type Config struct {
	Prefix     string `help:"URL prefix the dashboard is mounted under." default:"/dashapp"`
	Stylesheet string `help:"Stylesheet linked by every dashboard page." defaultFromField:"defaultStylesheet"`

	// Title is shown as the header of every page.
	Title string
	// PlotlyScript is the URL of the browser plotting library.
	PlotlyScript string

	defaultStylesheet string
	flagPrefix        string
}

var defaultConfig = Config{
	Title:             "Multi-page Dashboard Demo",
	PlotlyScript:      "https://cdn.plot.ly/plotly-2.27.0.min.js",
	defaultStylesheet: "https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css",
	flagPrefix:        name,
}

func init() {
	conf.Process(&defaultConfig)
}

// DefaultConfig returns the shell configuration with flags and environment applied.
func DefaultConfig() Config {
	conf.Process(&defaultConfig)
	return defaultConfig
}

// Update is the result of one dispatched control change.
type Update struct {
	// Output is the identity of the graph to redraw.
	Output string       `json:"output"`
	Figure chart.Figure `json:"figure"`
}

// Shell is safe for concurrent use. Pages are immutable once registered.
type Shell struct {
	config   Config
	pages    []page.Descriptor
	owners   map[string]int
	nav      template.HTML
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// New registers pages in given order. The first page is served at the root of the prefix.
func New(config Config, pages ...page.Descriptor) (*Shell, error) {
	prefix, err := normalizePrefix(config.Prefix)
	if err != nil {
		return nil, err
	}
	config.Prefix = prefix
	if len(pages) == 0 {
		return nil, errors.New("dashboard needs at least one page")
	}

	s := &Shell{
		config: config,
		pages:  append([]page.Descriptor(nil), pages...),
		owners: map[string]int{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	var errs errcollection.ErrorCollection
	paths := map[string]bool{}
	for i, d := range s.pages {
		if err := d.Validate(); err != nil {
			errs.Add(err)
			continue
		}
		if paths[d.Path] {
			errs.Add(errors.Errorf("page path %q registered twice", d.Path))
		}
		paths[d.Path] = true
		for controlID := range d.Callbacks {
			if owner, ok := s.owners[controlID]; ok {
				errs.Add(errors.Errorf("control %q of page %q already bound by page %q", controlID, d.Path, s.pages[owner].Path))
				continue
			}
			s.owners[controlID] = i
		}
	}
	if err := errs.GetErrIfAny(); err != nil {
		return nil, errors.Wrap(err, "cannot register dashboard pages")
	}

	if s.nav, err = layout.HTML(s.navigation()); err != nil {
		return nil, err
	}
	s.mux = s.routes()
	return s, nil
}

func normalizePrefix(prefix string) (string, error) {
	trimmed := strings.TrimRight(prefix, "/")
	if !strings.HasPrefix(trimmed, "/") || strings.ContainsAny(trimmed, "?#") {
		return "", errors.Errorf("dashboard prefix %q must be an absolute path other than /", prefix)
	}
	return trimmed, nil
}

// Prefix returns the normalized URL prefix.
func (s *Shell) Prefix() string {
	return s.config.Prefix
}

// Pages returns registered pages in registration order.
func (s *Shell) Pages() []page.Descriptor {
	return append([]page.Descriptor(nil), s.pages...)
}

// URL returns the absolute path of a page.
func (s *Shell) URL(d page.Descriptor) string {
	return s.config.Prefix + "/" + d.Path
}

// Resolve finds the page registered under path. Empty path resolves to the first page.
func (s *Shell) Resolve(path string) (page.Descriptor, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return s.pages[0], nil
	}
	for _, d := range s.pages {
		if d.Path == path {
			return d, nil
		}
	}
	return page.Descriptor{}, errors.Wrapf(ErrRouteNotFound, "path %q", path)
}

func (s *Shell) owner(controlID string) (page.Descriptor, bool) {
	i, ok := s.owners[controlID]
	if !ok {
		return page.Descriptor{}, false
	}
	return s.pages[i], true
}

// Dispatch recomputes the chart bound to controlID from its new value.
// Unknown controls and bad values are logged and returned, never fatal.
func (s *Shell) Dispatch(controlID string, value json.RawMessage) (Update, error) {
	d, ok := s.owner(controlID)
	if !ok {
		log.WithField("control", controlID).Warn("Update of a control no page is bound to")
		return Update{}, errors.Wrapf(ErrDispatchMismatch, "control %q", controlID)
	}

	callback := d.Callbacks[controlID]
	figure, err := callback.Update(value)
	if err != nil {
		log.WithFields(log.Fields{"control": controlID, "page": d.Path}).Warnf("Update failed: %v", err)
		return Update{}, errors.Wrapf(err, "control %q", controlID)
	}

	log.WithFields(log.Fields{
		"control": controlID,
		"page":    d.Path,
		"output":  callback.Output,
		"traces":  len(figure.Data),
	}).Debug("Update dispatched")
	return Update{Output: callback.Output, Figure: figure}, nil
}

// Initial draws every chart of the page from the default values of its controls.
func (s *Shell) Initial(d page.Descriptor) []Update {
	updates := []Update{}
	for _, controlID := range d.ControlIDs() {
		value, err := d.Default(controlID)
		if errutil.Warn(err, "cannot read default value") {
			continue
		}
		update, err := s.Dispatch(controlID, value)
		if errutil.Warn(err, "cannot draw initial chart") {
			continue
		}
		updates = append(updates, update)
	}
	return updates
}

// navigation links home and then every page in registration order.
func (s *Shell) navigation() layout.Node {
	links := []layout.Node{layout.Link("style-demo", "Home", s.config.Prefix+"/")}
	for _, d := range s.pages {
		links = append(links, layout.Link("", d.Name, s.URL(d)))
	}
	return layout.Nav(links...)
}
