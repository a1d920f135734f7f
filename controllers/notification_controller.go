package controllers

import (
	"net/http"

	"timepass_server/services"
)

// NotificationController serves the synthesized notification feed
type NotificationController struct {
	NotificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// HandleNotifications builds and returns the viewer's notification feed
func (nc *NotificationController) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	notifs, err := nc.NotificationService.BuildNotifications(r.Context(), userID)
	if err != nil {
		writeError(w, "Failed to fetch notifications", err)
		return
	}
	writeJSON(w, http.StatusOK, notifs)
}

// HandleSuggestions returns users the viewer does not follow yet
func (nc *NotificationController) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}
	suggestions, err := nc.NotificationService.Suggestions(r.Context(), userID)
	if err != nil {
		writeError(w, "Failed to fetch suggestions", err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}
