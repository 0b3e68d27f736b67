package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

type contextKey string

const principalContextKey contextKey = "principal"

// TokenVerifier разрешает сессионный токен в принципала.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*services.Principal, error)
}

type Auth struct {
	sessions TokenVerifier
}

func NewAuth(sessions TokenVerifier) *Auth {
	return &Auth{sessions: sessions}
}

// AdminToken достаёт админский токен. Исторически клиенты шлют его под
// двумя именами заголовка.
func AdminToken(r *http.Request) string {
	if token := r.Header.Get("X-Auth-Token"); token != "" {
		return token
	}
	return r.Header.Get("X-Admin-Token")
}

func SessionToken(r *http.Request) string {
	return r.Header.Get("X-Session-Token")
}

// RequireAdmin пускает дальше только предъявителя валидной админской
// сессии. Отсутствие токена — 401, невалидный или неадминский токен — 403:
// эти случаи обязаны оставаться различимыми.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := a.resolveAdmin(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

func (a *Auth) RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := a.resolveAdmin(w, r)
		if !ok {
			return
		}
		if !principal.IsSuperAdmin() {
			writeError(w, http.StatusForbidden, "Super admin access required")
			return
		}
		next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principal)))
	})
}

func (a *Auth) resolveAdmin(w http.ResponseWriter, r *http.Request) (*services.Principal, bool) {
	token := AdminToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	principal, err := a.sessions.Verify(r.Context(), token)
	if err != nil || !principal.IsAdmin() {
		writeError(w, http.StatusForbidden, "Invalid token")
		return nil, false
	}
	return principal, true
}

func withPrincipal(ctx context.Context, principal *services.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext возвращает принципала, сохранённого RequireAdmin /
// RequireSuperAdmin.
func PrincipalFromContext(ctx context.Context) (*services.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*services.Principal)
	return principal, ok
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
