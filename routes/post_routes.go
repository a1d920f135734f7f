package routes

import (
	"timepass_server/controllers"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// RegisterPostRoutes sets up post, comment and like/save routes under /api/posts
func RegisterPostRoutes(r *mux.Router, postService *services.PostService, graphService *services.GraphService, feedService *services.FeedService) {
	controller := controllers.NewPostController(postService, graphService, feedService)

	postRouter := r.PathPrefix("/api/posts").Subrouter()
	postRouter.HandleFunc("", controller.HandleCreatePost).Methods("POST")
	postRouter.HandleFunc("/user/{userId}", controller.HandlePostsByAuthor).Methods("GET")
	postRouter.HandleFunc("/{postId}", controller.HandleGetPost).Methods("GET")
	postRouter.HandleFunc("/{postId}", controller.HandleDeletePost).Methods("DELETE")
	postRouter.HandleFunc("/{postId}/like", controller.HandleToggleLike).Methods("POST")
	postRouter.HandleFunc("/{postId}/save", controller.HandleToggleSave).Methods("POST")
	postRouter.HandleFunc("/{postId}/comments", controller.HandleAddComment).Methods("POST")
	postRouter.HandleFunc("/{postId}/viewstate", controller.HandleViewState).Methods("GET")
}
