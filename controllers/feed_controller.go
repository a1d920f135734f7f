package controllers

import (
	"net/http"

	"timepass_server/services"
)

// FeedController handles the home feed, reels and explore views
type FeedController struct {
	FeedService *services.FeedService
}

// NewFeedController creates a new FeedController instance
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{FeedService: feedService}
}

// HandleFeed returns all posts, newest first
func (fc *FeedController) HandleFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := fc.FeedService.LoadFeed(r.Context())
	if err != nil {
		writeError(w, "Failed to load feed", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// HandleReels returns video posts, newest first
func (fc *FeedController) HandleReels(w http.ResponseWriter, r *http.Request) {
	posts, err := fc.FeedService.LoadReels(r.Context())
	if err != nil {
		writeError(w, "Failed to load reels", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// HandleExplore searches users and posts by substring
func (fc *FeedController) HandleExplore(w http.ResponseWriter, r *http.Request) {
	result, err := fc.FeedService.Explore(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, "Failed to search", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
