// Package httpapi exposes the gophdemo services over HTTP/JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/gophdemo/internal/logging"
	"github.com/dmitrijs2005/gophdemo/internal/server/models"
	"github.com/dmitrijs2005/gophdemo/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// UserService is the subset of services.UserService the handlers need.
type UserService interface {
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	List(ctx context.Context) ([]models.PublicUser, error)
}

// Processor is the subset of services.Processor the handlers need.
type Processor interface {
	Process(action string, data json.RawMessage) (*models.ProcessResult, error)
}

type HTTPServer struct {
	address      string
	users        UserService
	processor    Processor
	logger       logging.Logger
	jwtSecret    []byte
	requireLogin bool
}

// Option tweaks an HTTPServer at construction.
type Option func(*HTTPServer)

// WithRequireLogin guards the data endpoints with bearer tokens signed by secretKey.
func WithRequireLogin(secretKey string) Option {
	return func(s *HTTPServer) {
		s.requireLogin = true
		s.jwtSecret = []byte(secretKey)
	}
}

func NewHTTPServer(a string, l logging.Logger, us UserService, ps Processor, opts ...Option) *HTTPServer {
	s := &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		processor: ps,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi route tree with the middleware stack.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/", s.status)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.login)

		r.Group(func(r chi.Router) {
			if s.requireLogin {
				r.Use(s.accessTokenMiddleware)
			}
			r.Get("/users", s.listUsers)
			r.Post("/process-data", s.processData)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
