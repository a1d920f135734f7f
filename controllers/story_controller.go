package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"timepass_server/services"

	"github.com/gorilla/mux"
)

// StoryController handles HTTP requests for stories
type StoryController struct {
	StoryService *services.StoryService
	GraphService *services.GraphService
}

// NewStoryController creates a new StoryController instance
func NewStoryController(storyService *services.StoryService, graphService *services.GraphService) *StoryController {
	return &StoryController{StoryService: storyService, GraphService: graphService}
}

// HandlePublishStory publishes a story visible for 24 hours
func (sc *StoryController) HandlePublishStory(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string `json:"userId"`
		MediaURL string `json:"mediaUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	story, err := sc.StoryService.PublishStory(r.Context(), request.UserID, request.MediaURL)
	if err != nil {
		writeError(w, "Failed to publish story", err)
		return
	}
	writeJSON(w, http.StatusCreated, story)
}

// HandleListActive lists non-expired stories, newest first
func (sc *StoryController) HandleListActive(w http.ResponseWriter, r *http.Request) {
	stories, err := sc.StoryService.ListActive(r.Context(), time.Now())
	if err != nil {
		writeError(w, "Failed to fetch stories", err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// HandleStoryTray lists the most recent active story per author
func (sc *StoryController) HandleStoryTray(w http.ResponseWriter, r *http.Request) {
	tray, err := sc.StoryService.StoryTray(r.Context(), time.Now())
	if err != nil {
		writeError(w, "Failed to fetch story tray", err)
		return
	}
	writeJSON(w, http.StatusOK, tray)
}

// HandleStoriesByAuthor lists an author's active stories in playback order
func (sc *StoryController) HandleStoriesByAuthor(w http.ResponseWriter, r *http.Request) {
	stories, err := sc.StoryService.StoriesByAuthor(r.Context(), mux.Vars(r)["userId"], time.Now())
	if err != nil {
		writeError(w, "Failed to fetch stories", err)
		return
	}
	writeJSON(w, http.StatusOK, stories)
}

// HandleToggleLike likes or unlikes a story
func (sc *StoryController) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID         string `json:"userId"`
		CurrentlyLiked bool   `json:"currentlyLiked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	err := sc.GraphService.ToggleStoryLike(r.Context(), mux.Vars(r)["storyId"], request.UserID, request.CurrentlyLiked)
	if err != nil {
		writeError(w, "Failed to update story like", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Like updated"})
}

// HandleToggleSave saves or unsaves a story for the viewer
func (sc *StoryController) HandleToggleSave(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID         string `json:"userId"`
		CurrentlySaved bool   `json:"currentlySaved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	err := sc.GraphService.ToggleSaveStory(r.Context(), request.UserID, mux.Vars(r)["storyId"], request.CurrentlySaved)
	if err != nil {
		writeError(w, "Failed to save story", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Save updated"})
}

// HandleAddComment appends a comment to a story
func (sc *StoryController) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	comment, err := sc.StoryService.AddStoryComment(r.Context(), mux.Vars(r)["storyId"], request.UserID, request.Text)
	if err != nil {
		writeError(w, "Failed to add comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// HandleDeleteStory removes a story before its natural expiry
func (sc *StoryController) HandleDeleteStory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if err := sc.StoryService.DeleteStory(r.Context(), mux.Vars(r)["storyId"], userID); err != nil {
		writeError(w, "Failed to delete story", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Story deleted"})
}
