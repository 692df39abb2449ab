package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
)

// Recover превращает panic в обработчике в ответ 500
func Recover(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					logger.Error("%s %s - Panic: %v\n%s", r.Method, r.URL.Path, rv, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
