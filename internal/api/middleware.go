// internal/api/middleware.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type logCtxKey struct{}

// Logging logs one line per request with a request-scoped logger that
// handlers can pick up through GetLogger.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With("req_id", chimiddleware.GetReqID(r.Context()))
			r = r.WithContext(context.WithValue(r.Context(), logCtxKey{}, reqLogger))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				// nothing written; net/http answers 200
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			reqLogger.Log(r.Context(), level, "request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes_out", ww.BytesWritten(),
				"latency_ms", float64(time.Since(start).Nanoseconds())/1e6,
			)
		})
	}
}

// GetLogger returns the request-scoped logger, or slog.Default outside a
// request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// CORS allows browser front-ends on the given origins.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}).Handler
}

// NewServerHandler wires the middleware chain:
// RequestID → Recoverer → Logging → CORS → mux.
func NewServerHandler(mux http.Handler, logger *slog.Logger, allowedOrigins []string) http.Handler {
	var h http.Handler = mux
	h = CORS(allowedOrigins)(h)
	h = Logging(logger)(h)
	h = chimiddleware.Recoverer(h)
	h = chimiddleware.RequestID(h)
	return h
}
