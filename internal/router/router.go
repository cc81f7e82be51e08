package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"hackatweet/internal/config"
	handlers "hackatweet/internal/handler"
	"hackatweet/internal/middleware"
)

// NewRouter wires every endpoint onto a chi router.
func NewRouter(h *handlers.Handlers, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(cfg))

	r.Get("/", handlers.HomeHandler)
	r.Get("/health", h.HealthHandler)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/signup", h.Signup)
		r.Post("/signin", h.Signin)
	})

	r.Route("/tweets", func(r chi.Router) {
		r.Post("/", h.CreateTweet)
		r.Delete("/", h.DeleteTweet)
		r.Put("/like", h.LikeTweet)

		r.Get("/all/{token}", h.GetAllTweets)
		r.Get("/trends/{token}", h.GetTrends)
		r.Get("/hashtag/{token}/{query}", h.SearchHashtag)

		// empty path parameters reach the handlers and fail validation
		r.Get("/all/", h.GetAllTweets)
		r.Get("/trends/", h.GetTrends)
		r.Get("/hashtag/{token}/", h.SearchHashtag)
	})

	return r
}
