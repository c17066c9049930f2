// Package web is the browser front end of the authdemo client: server
// rendered login, register and dashboard pages over the shared session
// core. There is one session per process, so every browser talking to the
// same instance sees the same login.
package web

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authdemo/internal/client/guard"
	"github.com/dmitrijs2005/authdemo/internal/client/services"
	"github.com/dmitrijs2005/authdemo/internal/client/session"
	"github.com/dmitrijs2005/authdemo/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	loginPath     = "/login"
	registerPath  = "/register"
	dashboardPath = "/dashboard"
)

type Server struct {
	auth      services.AuthService
	session   *session.Container
	logger    logging.Logger
	templates map[string]*template.Template
}

func NewServer(auth services.AuthService, container *session.Container, logger logging.Logger) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{
		auth:      auth,
		session:   container,
		logger:    logger.With("module", "web"),
		templates: tmpl,
	}, nil
}

// Routes returns the front end's handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleHome)
	r.Get("/healthz", s.handleHealth)

	r.Get(loginPath, s.handleLoginForm)
	r.Post(loginPath, s.handleLogin)
	r.Get(registerPath, s.handleRegisterForm)
	r.Post(registerPath, s.handleRegister)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(guard.Middleware(s.session, loginPath))
		r.Get(dashboardPath, s.handleDashboard)
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	listen, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{Handler: s.Routes(), ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting web server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
	})
}

// Navigator is the web front end's reaction to a 401 from the record
// store. The container is already logged out by then, so the guard sends
// the next protected request to the login page; this only records it.
type Navigator struct {
	logger logging.Logger
}

func NewNavigator(logger logging.Logger) *Navigator {
	return &Navigator{logger: logger.With("module", "web")}
}

func (n *Navigator) ToLogin(ctx context.Context) {
	n.logger.Info(ctx, "session rejected by record store, login required")
}
