// Package httpapi is the HTTP execution service: it accepts Scramble source
// over a JSON API, runs it, and persists the result via a dao.Store.
package httpapi

import (
	"net/http"
	"time"

	"github.com/dekarrin/scramble/internal/dao"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server holds everything the API's endpoint functions need: the run
// repository and the admin credentials POST /api/v1/login checks against.
type Server struct {
	runs dao.RunRepository

	adminUser         string
	adminPasswordHash string
	jwtSecret         []byte
	unauthDelay       time.Duration
}

// New builds a Server backed by store.
func New(store dao.Store, adminUser, adminPasswordHash, jwtSecret string) *Server {
	return &Server{
		runs:              store.Runs(),
		adminUser:         adminUser,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         []byte(jwtSecret),
		unauthDelay:       time.Second,
	}
}

// Router builds the chi router serving the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", endpoint(s.epLogin))

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return requireAuth(s.jwtSecret, s.adminUser, s.unauthDelay, next)
			})
			r.Post("/runs", endpoint(s.epCreateRun))
			r.Get("/runs", endpoint(s.epGetAllRuns))
			r.Get("/runs/{id}", endpoint(s.epGetRun))
		})
	})

	return r
}
