package models

const (
	StatusOK    = "ok"
	StatusReady = "ready"
)

// WelcomeMessage is the plain-text body served on the root route.
const WelcomeMessage = "Welcome to the Node.js app!"

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
