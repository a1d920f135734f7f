package routes

import (
	"timepass_server/controllers"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up notification routes under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, notificationService *services.NotificationService) {
	controller := controllers.NewNotificationController(notificationService)

	notifRouter := r.PathPrefix("/api/notifications").Subrouter()
	notifRouter.HandleFunc("", controller.HandleNotifications).Methods("GET")
	notifRouter.HandleFunc("/suggestions", controller.HandleSuggestions).Methods("GET")
}
