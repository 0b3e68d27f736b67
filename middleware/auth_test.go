package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/middleware"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

type stubVerifier struct {
	principals map[string]*services.Principal
}

func (s stubVerifier) Verify(_ context.Context, token string) (*services.Principal, error) {
	principal, ok := s.principals[token]
	if !ok {
		return nil, services.ErrInvalidToken
	}
	return principal, nil
}

func newTestAuth() *middleware.Auth {
	return middleware.NewAuth(stubVerifier{principals: map[string]*services.Principal{
		"admin-token": {
			UserType: models.UserTypeAdmin,
			Admin:    &models.Admin{ID: 1, Username: "moderator", Role: models.AdminRoleAdmin},
		},
		"super-token": {
			UserType: models.UserTypeAdmin,
			Admin:    &models.Admin{ID: 2, Username: "root", Role: models.AdminRoleSuperAdmin},
		},
		"captain-token": {
			UserType: models.UserTypeTeamCaptain,
			Team:     &models.Team{ID: 7, TeamName: "Alpha"},
		},
	}})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminNoToken(t *testing.T) {
	var called bool
	handler := newTestAuth().RequireAdmin(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRequireAdminInvalidToken(t *testing.T) {
	var called bool
	handler := newTestAuth().RequireAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth-Token", "garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

// Токен капитана — не админский: 403, а не 401.
func TestRequireAdminRejectsCaptainToken(t *testing.T) {
	var called bool
	handler := newTestAuth().RequireAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth-Token", "captain-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireAdminPassesAndStoresPrincipal(t *testing.T) {
	var principal *services.Principal
	handler := newTestAuth().RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFromContext(r.Context())
		require.True(t, ok)
		principal = p
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth-Token", "admin-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, principal)
	assert.Equal(t, "moderator", principal.Admin.Username)
}

// Исторический заголовок X-Admin-Token принимается наравне с X-Auth-Token.
func TestRequireAdminLegacyHeader(t *testing.T) {
	var called bool
	handler := newTestAuth().RequireAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Admin-Token", "admin-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireSuperAdminRejectsPlainAdmin(t *testing.T) {
	var called bool
	handler := newTestAuth().RequireSuperAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth-Token", "admin-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"error":"Super admin access required"}`, rec.Body.String())
}

func TestRequireSuperAdminPassesSuperAdmin(t *testing.T) {
	var called bool
	handler := newTestAuth().RequireSuperAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth-Token", "super-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
