package controllers

import (
	"encoding/json"
	"net/http"

	"timepass_server/models"
	"timepass_server/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for profiles and the follow relation
type UserController struct {
	UserService  *services.UserService
	GraphService *services.GraphService
}

// NewUserController creates a new UserController instance
func NewUserController(userService *services.UserService, graphService *services.GraphService) *UserController {
	return &UserController{UserService: userService, GraphService: graphService}
}

// HandleCreateProfile creates the profile document at sign-up
func (uc *UserController) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	profile, err := uc.UserService.CreateProfile(r.Context(), user)
	if err != nil {
		writeError(w, "Failed to create profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleGetProfile fetches a profile by id
func (uc *UserController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	profile, err := uc.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, "Failed to fetch profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleUpdateProfile applies a partial edit to a profile
func (uc *UserController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	profile, err := uc.UserService.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		writeError(w, "Failed to update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleToggleFollow follows or unfollows a user. CurrentlyFollowing is the
// caller's cached belief about the relation.
func (uc *UserController) HandleToggleFollow(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FollowerID         string `json:"followerId"`
		TargetID           string `json:"targetId"`
		CurrentlyFollowing bool   `json:"currentlyFollowing"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	err := uc.GraphService.ToggleFollow(r.Context(), request.FollowerID, request.TargetID, request.CurrentlyFollowing)
	if err != nil {
		writeError(w, "Failed to update follow status", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Follow status updated"})
}
