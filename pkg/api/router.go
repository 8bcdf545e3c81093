package api

import (
	"encoding/json"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hatchdotlol/passcheck/pkg/models"
	"github.com/rs/cors"
)

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	resp, _ := json.Marshal(models.RootResp{
		StartTime: s.Config.StartTime,
		Version:   s.Config.Version,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write(resp)
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	cors := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	r.Use(cors.Handler)
	r.Use(middleware.Recoverer)
	r.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)

	r.Options("/*", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/", s.Root)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())

	r.Mount("/api", s.PasswordRouter())

	return r
}
