package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"timepass_server/services"
	"timepass_server/store"

	"github.com/rs/zerolog/log"
)

// Broadcaster pushes an event into a live room. Implemented by the Socket.IO
// server; tests pass a recording fake.
type Broadcaster interface {
	BroadcastToRoom(namespace, room, event string, args ...interface{}) bool
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a failure to a status code and a user-facing notice naming
// the attempted action. Failures are logged and surfaced, never retried.
func writeError(w http.ResponseWriter, action string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	}
	log.Error().Err(err).Str("component", "http").Msg(action)
	writeJSON(w, status, map[string]string{"error": action})
}
