package middlewares

import "net/http"

// Chain wraps h so that mw[0] is the outermost middleware, matching the
// order mux.Router.Use applies them in.
func Chain(h http.Handler, mw ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
