package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog/log"
)

type Options struct {
	// RatePerMin caps requests per client IP; 0 disables the limiter.
	RatePerMin  int
	CORSOrigins []string
	Timeout     time.Duration
}

type Server struct{ mux *chi.Mux }

func New(opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	m := chi.NewRouter()

	// all middlewares before any routes
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		m.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
			ExposedHeaders: []string{"ETag", "Location"},
			MaxAge:         300,
		}))
	}
	if opts.RatePerMin > 0 {
		m.Use(httprate.LimitByIP(opts.RatePerMin, time.Minute))
	}
	m.Use(Timeout(opts.Timeout))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
