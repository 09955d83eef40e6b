package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"blogapi/internal/api"
	"blogapi/internal/api/middleware"
	"blogapi/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Trace)
	r.Use(middleware.Recovery)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenService,
		app.passwordVerifier,
		app.passwordHasher,
		app.logger,
	)
	postHandler := api.NewPostHandler(app.postStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)
	authMiddleware := middleware.NewAuthMiddleware(app.tokenService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/login", authHandler.Login)
		r.Post("/posts/{postId}/comments", commentHandler.Create)
		r.Get("/posts/{postId}/comments", commentHandler.List)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth", authHandler.CurrentUser)
			r.Patch("/profile", authHandler.UpdateProfile)
			r.Patch("/password", authHandler.ChangePassword)

			r.Post("/posts", postHandler.Create)
			r.Get("/posts", postHandler.List)
			r.Get("/posts/{postId}", postHandler.Get)
			r.Patch("/posts/{postId}", postHandler.Update)
			r.Delete("/posts/{postId}", postHandler.Delete)

			r.Get("/posts/{postId}/comments/{commentId}", commentHandler.Get)
			r.Patch("/posts/{postId}/comments/{commentId}", commentHandler.Update)
			r.Delete("/posts/{postId}/comments/{commentId}", commentHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithData(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Unknown routes get the same envelope as every other error.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Page not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Page not found")
	})

	return r
}
