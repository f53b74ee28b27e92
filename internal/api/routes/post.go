package routes

import (
	"Quill/internal/api/handlers/post"
	"Quill/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post endpoints on the router.
// The acting user id is an explicit path parameter; authentication is the
// surrounding deployment's concern, not this service's.
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Post("/api/users/{userID}/posts", createHandler.HandleCreate)
	r.Get("/api/users/{userID}/posts", listHandler.HandleList)
	r.Get("/api/users/{userID}/posts/{postID}", getHandler.HandleGet)
	r.Put("/api/users/{userID}/posts/{postID}", updateHandler.HandleUpdate)
	r.Patch("/api/users/{userID}/posts/{postID}/title", updateHandler.HandleUpdateTitle)
	r.Patch("/api/users/{userID}/posts/{postID}/content", updateHandler.HandleUpdateContent)

	// Delete takes no user context - the operation has no ownership check
	r.Delete("/api/posts/{postID}", deleteHandler.HandleDelete)
}
