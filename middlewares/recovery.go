package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"welcome-app/handlers"
)

// Recovery turns a handler panic into a 500 response so one bad request
// never takes the listener down. A response that was already started is
// left as is; writing a second status line would only corrupt it.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					started := ww.Status() != 0
					logger.Error("panic_recovered",
						zap.Any("error", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Bool("response_started", started),
						zap.String("request_id", middleware.GetReqID(r.Context())),
						zap.Stack("stack"),
					)
					if !started {
						handlers.WriteError(ww, http.StatusInternalServerError, "internal server error")
					}
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
