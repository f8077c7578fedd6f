package middleware

import (
	"net/http"
	"time"

	"github.com/ghaggin/hbnb-web/internal/page"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const activationHeader = "X-Activation-Id"

// Activation tags each request with a fresh activation id.
func Activation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(activationHeader, id)
		next.ServeHTTP(w, r.WithContext(page.WithActivationID(r.Context(), id)))
	})
}

func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	log = log.Named("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.String("activation", page.ActivationID(r.Context())),
			)
		})
	}
}
