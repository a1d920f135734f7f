package routes

import (
	"timepass_server/controllers"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up profile and follow routes under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, graphService *services.GraphService) {
	controller := controllers.NewUserController(userService, graphService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("", controller.HandleCreateProfile).Methods("POST")
	userRouter.HandleFunc("/follow", controller.HandleToggleFollow).Methods("POST")
	userRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleUpdateProfile).Methods("PATCH")
}
