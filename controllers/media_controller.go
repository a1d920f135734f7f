package controllers

import (
	"encoding/json"
	"net/http"

	"timepass_server/services"
)

// MediaController hands out presigned URLs for direct media upload/read
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController creates a new MediaController instance
func NewMediaController(mediaService *services.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// HandleUploadURL returns a presigned PUT URL and the object key
func (mc *MediaController) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	url, key, err := mc.MediaService.UploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		writeError(w, "Failed to generate upload URL", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// HandleReadURL returns a presigned GET URL for an uploaded object
func (mc *MediaController) HandleReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	url, err := mc.MediaService.ReadURL(r.Context(), key)
	if err != nil {
		writeError(w, "Failed to generate read URL", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
