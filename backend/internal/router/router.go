package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/itchan-dev/threadline/backend/internal/middleware"
	"github.com/itchan-dev/threadline/backend/internal/setup"
	"github.com/itchan-dev/threadline/shared/metrics"
)

// pages only need inline styles from the sanitized markup
const pageCSP = "default-src 'none'; style-src 'unsafe-inline'; img-src https: data:; frame-ancestors 'none'"

func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.Api.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		if deps.Limiter != nil {
			v1.Use(mw.RateLimit(deps.Limiter))
		}

		v1.Get("/summary", h.GetSummary)
		v1.Get("/activity", h.GetActivity)
		v1.Get("/runs/{run}/summary", h.GetRunSummary)
		v1.Get("/runs/{run}/threads", h.GetRunThreads)
		v1.Get("/threads", h.GetThreads)
		v1.Get("/threads/{root}", h.GetThread)
		v1.Get("/conversations", h.GetConversations)
		v1.Get("/conversations/{id}", h.GetConversation)

		v1.Group(func(pages chi.Router) {
			pages.Use(mw.SecurityHeaders(pageCSP))
			pages.Get("/threads/{root}/html", h.GetThreadHTML)
			pages.Get("/conversations/{id}/html", h.GetConversationHTML)
		})
	})

	return r
}
