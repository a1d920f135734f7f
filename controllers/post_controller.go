package controllers

import (
	"encoding/json"
	"net/http"

	"timepass_server/models"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts, comments and the
// like/save toggles
type PostController struct {
	PostService  *services.PostService
	GraphService *services.GraphService
	FeedService  *services.FeedService
}

// NewPostController creates a new PostController instance
func NewPostController(postService *services.PostService, graphService *services.GraphService, feedService *services.FeedService) *PostController {
	return &PostController{PostService: postService, GraphService: graphService, FeedService: feedService}
}

// HandleCreatePost publishes a post
func (pc *PostController) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	created, err := pc.PostService.CreatePost(r.Context(), post)
	if err != nil {
		writeError(w, "Failed to create post", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// HandleGetPost fetches a single post
func (pc *PostController) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := pc.PostService.GetPost(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, "Failed to fetch post", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// HandlePostsByAuthor fetches a user's posts, newest first
func (pc *PostController) HandlePostsByAuthor(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.PostService.PostsByAuthor(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, "Failed to fetch posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// HandleDeletePost deletes a post owned by the requesting user
func (pc *PostController) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	if err := pc.PostService.DeletePost(r.Context(), mux.Vars(r)["postId"], userID); err != nil {
		writeError(w, "Failed to delete post", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// HandleToggleLike likes or unlikes a post
func (pc *PostController) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID         string `json:"userId"`
		CurrentlyLiked bool   `json:"currentlyLiked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	err := pc.GraphService.TogglePostLike(r.Context(), mux.Vars(r)["postId"], request.UserID, request.CurrentlyLiked)
	if err != nil {
		writeError(w, "Failed to update like", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Like updated"})
}

// HandleToggleSave saves or unsaves a post for the viewer
func (pc *PostController) HandleToggleSave(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID         string `json:"userId"`
		CurrentlySaved bool   `json:"currentlySaved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	err := pc.GraphService.ToggleSavePost(r.Context(), request.UserID, mux.Vars(r)["postId"], request.CurrentlySaved)
	if err != nil {
		writeError(w, "Failed to save post", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Save updated"})
}

// HandleAddComment appends a comment to a post
func (pc *PostController) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	comment, err := pc.PostService.AddComment(r.Context(), mux.Vars(r)["postId"], request.UserID, request.Text)
	if err != nil {
		writeError(w, "Failed to add comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// HandleViewState returns the viewer-relative flags for a post
func (pc *PostController) HandleViewState(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("viewerId")
	if viewerID == "" {
		http.Error(w, "viewerId is required", http.StatusBadRequest)
		return
	}
	state, err := pc.FeedService.ViewState(r.Context(), mux.Vars(r)["postId"], viewerID)
	if err != nil {
		writeError(w, "Failed to derive view state", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
