package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(otelchi.Middleware("theatre-reservation-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/healthcheck", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activated", app.ActivateUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Get("/users/me", app.GetCurrentUser)

	r.Route("/theatre-halls", func(r chi.Router) {
		r.Get("/", app.GetTheatreHalls)
		r.Get("/{id}", app.GetTheatreHall)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateTheatreHall)
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.GetActors)
		r.Get("/{id}", app.GetActor)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateActor)
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.GetGenres)
		r.Get("/{id}", app.GetGenre)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreateGenre)
	})

	r.Route("/plays", func(r chi.Router) {
		r.Get("/", app.GetPlays)
		r.Get("/{id}", app.GetPlay)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreatePlay)
	})

	r.Route("/performances", func(r chi.Router) {
		r.Get("/", app.GetPerformances)
		r.Get("/{id}", app.GetPerformance)
		r.With(app.requireAuthentication, app.requireAdmin).Post("/", app.CreatePerformance)
	})

	r.With(app.requireAuthentication).Route("/reservations", func(r chi.Router) {
		r.Get("/", app.GetReservations)
		r.Post("/", app.CreateReservation)
		r.Get("/{id}", app.GetReservation)

		// Reservations are immutable once created.
		r.Put("/{id}", app.methodNotAllowedResponse)
		r.Patch("/{id}", app.methodNotAllowedResponse)
		r.Delete("/{id}", app.methodNotAllowedResponse)
	})

	// Tickets are created only through reservations; this listing is for
	// administrative inspection.
	r.With(app.requireAuthentication, app.requireAdmin).Get("/tickets", app.GetTickets)

	return r
}
