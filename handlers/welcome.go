package handlers

import (
	"net/http"

	"welcome-app/models"
)

// Welcome serves the plain-text greeting on the root route.
func Welcome(w http.ResponseWriter, r *http.Request) {
	respondText(w, r, http.StatusOK, models.WelcomeMessage)
}
