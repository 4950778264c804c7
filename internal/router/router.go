package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"mandi-backend/internal/handlers"
	"mandi-backend/internal/middleware"
)

func New(
	translationHandler *handlers.TranslationHandler,
	marketHandler *handlers.MarketHandler,
	negotiationHandler *handlers.NegotiationHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// AI-backed routes burn external quota (30 req/min per IP)
	aiLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Translation Routes ────
		r.Route("/translate", func(r chi.Router) {
			r.Get("/languages", translationHandler.Languages)
			r.Delete("/cache", translationHandler.ClearCache)
			r.Post("/detect", translationHandler.Detect)

			r.Group(func(r chi.Router) {
				r.Use(aiLimiter.Middleware)
				r.Post("/", translationHandler.Translate)
				r.Post("/batch", translationHandler.TranslateBatch)
			})
		})

		// ──── Market Rate Routes ────
		r.Route("/market", func(r chi.Router) {
			r.Get("/rates", marketHandler.List)
			r.Get("/rates/{crop}", marketHandler.Get)
			r.Get("/rates/{crop}/history", marketHandler.History)
			r.Get("/trending", marketHandler.Trending)
			r.Get("/search", marketHandler.Search)
		})

		// ──── Negotiation Routes ────
		r.Route("/negotiations", func(r chi.Router) {
			r.Post("/", negotiationHandler.Start)
			r.Get("/{id}", negotiationHandler.Get)
			r.Get("/{id}/suggest-price", negotiationHandler.SuggestPrice)
			r.Post("/{id}/finalize", negotiationHandler.Finalize)

			r.Group(func(r chi.Router) {
				r.Use(aiLimiter.Middleware)
				r.Post("/{id}/messages", negotiationHandler.SendMessage)
			})
		})
	})

	return r
}
