package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"chatbot-api/internal/config"
	"chatbot-api/internal/middleware"
)

// NewRouter assembles the HTTP router: request IDs, logging, panic recovery,
// CORS, and per-client rate limiting around the API routes.
func NewRouter(cfg *config.Config, handler *APIHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to Chatbot API with History",
		})
	})

	r.Post("/chat", handler.HandleChat)
	r.Post("/summarize", handler.HandleSummarize)
	r.Post("/translate", handler.HandleTranslate)
	r.Post("/sentiment", handler.HandleSentiment)

	r.Route("/history", func(r chi.Router) {
		r.Get("/", handler.HandleListHistory)
		r.Get("/{id}", handler.HandleGetHistory)
		r.Delete("/{id}", handler.HandleDeleteHistory)
	})

	return r
}
