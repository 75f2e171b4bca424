// Package frontdoor is the outward facing web server. It answers the landing
// route itself and hands every request under the dashboard prefix to the
// dashboard with the prefix stripped.
package frontdoor

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bosco-l/multipage-dashboard/pkg/conf"
	"github.com/bosco-l/multipage-dashboard/pkg/page"
	"github.com/bosco-l/multipage-dashboard/pkg/utils/netutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const name = "dashboard"

// LandingText is served at the root path.
const LandingText = "This is the home page served with Go"

// Config of the front door server.
type Config struct {
	Host            string        `help:"Address of the interface the server listens on." type:"ip" default:"0.0.0.0"`
	Port            int           `help:"Port the server listens on." default:"5000"`
	Prefix          string        `help:"URL prefix the dashboard is mounted under." default:"/dashapp"`
	ShutdownTimeout time.Duration `help:"Time given to open requests to finish on shutdown." default:"5s"`

	flagPrefix string
}

var defaultConfig = Config{flagPrefix: name}

func init() {
	conf.Process(&defaultConfig)
}

// DefaultConfig returns the server configuration with flags and environment applied.
func DefaultConfig() Config {
	conf.Process(&defaultConfig)
	return defaultConfig
}

// Dashboard serves requests below the prefix.
type Dashboard interface {
	http.Handler
	Pages() []page.Descriptor
}

// Server holds no package level state. Create as many as needed with New.
type Server struct {
	config    Config
	dashboard Dashboard
	handler   http.Handler
	server    *http.Server

	isListening netutil.IsListeningFunction // For mocking purposes.
}

// New builds the server routes. Nothing listens until Serve or ListenAndServe is called.
func New(config Config, dashboard Dashboard) *Server {
	config.Prefix = "/" + strings.Trim(config.Prefix, "/")

	s := &Server{config: config, dashboard: dashboard, isListening: netutil.IsListening}

	mounted := http.StripPrefix(config.Prefix, dashboard)
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleLanding)
	mux.Handle(config.Prefix, mounted)
	mux.Handle(config.Prefix+"/", mounted)

	s.handler = accessLog(mux)
	s.server = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, LandingText)
}

// Handler returns the complete request handler, access log included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the host:port the server binds to.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

func (s *Server) baseURL() string {
	return "http://" + net.JoinHostPort("localhost", strconv.Itoa(s.config.Port))
}

// URLs returns the landing page and dashboard URLs reachable from the local machine.
func (s *Server) URLs() []string {
	return []string{s.baseURL() + "/", s.baseURL() + s.config.Prefix}
}

// PageURLs returns the URL of every dashboard page, in registration order.
func (s *Server) PageURLs() []string {
	urls := []string{}
	for _, d := range s.dashboard.Pages() {
		urls = append(urls, s.baseURL()+s.config.Prefix+"/"+d.Path)
	}
	return urls
}

// Ready waits until the server accepts connections on its local address.
func (s *Server) Ready(timeout time.Duration) bool {
	host := s.config.Host
	if ip := net.ParseIP(host); ip == nil || ip.IsUnspecified() {
		host = "127.0.0.1"
	}
	return s.isListening(net.JoinHostPort(host, strconv.Itoa(s.config.Port)), timeout)
}

// ListenAndServe binds the configured address and serves until Shutdown.
func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return errors.Wrapf(err, "cannot listen on %s", s.Addr())
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Shutdown. A clean shutdown returns nil.
func (s *Server) Serve(listener net.Listener) error {
	log.Infof("Serving dashboard on %s under %s", listener.Addr(), s.config.Prefix)
	if err := s.server.Serve(listener); err != http.ErrServerClosed {
		return errors.Wrap(err, "server stopped")
	}
	return nil
}

// Shutdown stops accepting connections and waits for open requests, at most
// for the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}
	return errors.Wrap(s.server.Shutdown(ctx), "cannot shut down gracefully")
}
