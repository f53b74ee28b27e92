package routes

import (
	"Quill/internal/api/handlers/user"
	"Quill/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers the user endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.UserService) {
	registerHandler := user.NewRegisterHandler(service)
	getHandler := user.NewGetHandler(service)

	r.Post("/api/users", registerHandler.HandleRegister)
	r.Get("/api/users/{userID}", getHandler.HandleGet)
}
