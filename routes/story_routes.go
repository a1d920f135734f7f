package routes

import (
	"timepass_server/controllers"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// RegisterStoryRoutes sets up story routes under /api/stories
func RegisterStoryRoutes(r *mux.Router, storyService *services.StoryService, graphService *services.GraphService) {
	controller := controllers.NewStoryController(storyService, graphService)

	storyRouter := r.PathPrefix("/api/stories").Subrouter()
	storyRouter.HandleFunc("", controller.HandlePublishStory).Methods("POST")
	storyRouter.HandleFunc("/active", controller.HandleListActive).Methods("GET")
	storyRouter.HandleFunc("/tray", controller.HandleStoryTray).Methods("GET")
	storyRouter.HandleFunc("/user/{userId}", controller.HandleStoriesByAuthor).Methods("GET")
	storyRouter.HandleFunc("/{storyId}", controller.HandleDeleteStory).Methods("DELETE")
	storyRouter.HandleFunc("/{storyId}/like", controller.HandleToggleLike).Methods("POST")
	storyRouter.HandleFunc("/{storyId}/save", controller.HandleToggleSave).Methods("POST")
	storyRouter.HandleFunc("/{storyId}/comments", controller.HandleAddComment).Methods("POST")
}
