package handlers

import "github.com/go-chi/chi/v5"

// Routes returns the API route table, mounted under /api/v1 by main. The
// session manager must be set before any request is served.
func Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/auth/login", Login)

	// Everything below requires a live session
	r.Group(func(r chi.Router) {
		r.Use(RequireSession)

		r.Post("/auth/logout", Logout)
		r.Get("/session", GetSession)

		r.Get("/account", GetAccount)
		r.Get("/account/movements", ListMovements)
		r.Post("/account/transfers", Transfer)
		r.Post("/account/loans", RequestLoan)
		r.Post("/account/close", CloseAccount)
	})
	return r
}
