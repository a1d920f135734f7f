package routes

import (
	"timepass_server/controllers"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up messaging routes under /api/messages
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, live controllers.Broadcaster) {
	controller := controllers.NewChatController(chatService, live)

	chatRouter := r.PathPrefix("/api/messages").Subrouter()
	chatRouter.HandleFunc("", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("", controller.HandleListConversation).Methods("GET")
	chatRouter.HandleFunc("/partners", controller.HandleListPartners).Methods("GET")
	chatRouter.HandleFunc("/mark-read", controller.HandleMarkRead).Methods("POST")
}
