package routes

import (
	"timepass_server/controllers"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up the feed, reels and explore routes
func RegisterFeedRoutes(r *mux.Router, feedService *services.FeedService) {
	controller := controllers.NewFeedController(feedService)

	r.HandleFunc("/api/feed", controller.HandleFeed).Methods("GET")
	r.HandleFunc("/api/feed/reels", controller.HandleReels).Methods("GET")
	r.HandleFunc("/api/explore", controller.HandleExplore).Methods("GET")
}
