package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"barber-scheduling-service/internal/api/handlers"
)

// adminTokenHeader заголовок с токеном админки
const adminTokenHeader = "X-Admin-Token"

// Auth проверяет токен админки в заголовке запроса
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "требуется авторизация")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
