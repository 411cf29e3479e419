package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/blog-api/internal/api"
	apiMiddleware "github.com/phrazzld/blog-api/internal/api/middleware"
	"github.com/phrazzld/blog-api/internal/config"
)

// newRouter creates the application router with all routes and middleware.
func newRouter(cfg config.ServerConfig, logger *slog.Logger, b backend) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(logger))
	if cfg.LogRequests {
		r.Use(apiMiddleware.RequestLogger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	}))

	authHandler := api.NewAuthHandler(b.auth, logger)
	postHandler := api.NewPostHandler(b.posts, logger)
	commentHandler := api.NewCommentHandler(b.posts, b.comments, logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(b.auth)

	r.Route("/api", func(r chi.Router) {
		// Public
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", postHandler.ListPosts)
				r.Post("/", postHandler.CreatePost)
				r.Get("/search", postHandler.SearchPosts)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", postHandler.GetPost)
					r.Put("/", postHandler.UpdatePost)
					r.Delete("/", postHandler.DeletePost)

					r.Get("/comments", commentHandler.ListComments)
					r.Post("/comments", commentHandler.CreateComment)
					r.Put("/comments/{commentId}", commentHandler.UpdateComment)
					r.Delete("/comments/{commentId}", commentHandler.DeleteComment)
				})
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
