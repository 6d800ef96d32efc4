package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"github.com/rfenton/volcano-api/internal/api"
	apiMiddleware "github.com/rfenton/volcano-api/internal/api/middleware"
)

// credentialRateLimit caps attempts against the credential endpoints per
// client IP.
const credentialRateLimit = 10

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(secureMiddleware.Handler)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
	)
	profileHandler := api.NewProfileHandler(app.userStore)
	volcanoHandler := api.NewVolcanoHandler(app.volcanoStore, app.ratingsService)

	authGate := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Credential endpoints, rate limited per client IP.
	r.Group(func(r chi.Router) {
		r.Use(httprate.Limit(credentialRateLimit, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP)))
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
	})

	r.Get("/countries", volcanoHandler.Countries)
	r.Get("/volcanoes", volcanoHandler.List)

	// Everything below passes through the optional-auth gate: anonymous
	// requests flow through untouched, presented credentials are verified
	// and attached. Handlers that require authentication check identity
	// presence themselves.
	r.Group(func(r chi.Router) {
		r.Use(authGate.Authenticate)

		r.Get("/volcano/{id}", volcanoHandler.Detail)
		r.Get("/volcano/{id}/ratings", volcanoHandler.GetRatings)
		r.Post("/volcano/{id}/ratings", volcanoHandler.PostRating)
		r.Put("/volcano/{id}/ratings", volcanoHandler.PostRating)

		r.Get("/{email}/profile", profileHandler.Get)
		r.Put("/{email}/profile", profileHandler.Update)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
