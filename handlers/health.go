package handlers

import (
	"net/http"

	"welcome-app/models"
)

// Health returns a simple ok response for liveness checks.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.StatusResponse{Status: models.StatusOK})
}

// Ready reports that the service can take traffic. There are no downstream
// dependencies, so it is ready as soon as the listener is up.
func Ready(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.StatusResponse{Status: models.StatusReady})
}
