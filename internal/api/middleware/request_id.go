package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID заголовок с id запроса
const HeaderRequestID = "X-Request-ID"

// RequestID берет id из заголовка или генерирует UUID, возвращает его в ответе
// и пишет access log
func RequestID(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(HeaderRequestID, id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			logger.Info("%s %s - %d in %s, request_id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
		})
	}
}
