package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CanchaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
)

const bearerPrefix = "Bearer "

// Auth кладёт идентичность в контекст. Без заголовка, с невалидным токеном или закрытой сессией
// запрос идёт дальше анонимно: 401 отдают RequireAuth/RequireRole там, где сессия нужна.
// Сбой хранилища сессий - 500.
func Auth(resolver TokenResolver, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Malformed Authorization header, continuing as anonymous", r.Method, r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			identity, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					logger.Warn("%s %s - Token rejected, continuing as anonymous: %v", r.Method, r.URL.Path, err)
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("%s %s - Failed to resolve token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAuth пропускает только запросы с идентичностью
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.CurrentIdentity(r.Context()).IsAnonymous() {
			handlers.RespondUnauthorized(w, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole 401 для анонима, 403 для чужой роли
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := auth.CurrentIdentity(r.Context())
			if identity.IsAnonymous() {
				handlers.RespondUnauthorized(w, "")
				return
			}
			if !identity.HasRole(roles...) {
				handlers.RespondForbidden(w, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
