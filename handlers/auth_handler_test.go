package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/handlers"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

type authHandlerFixture struct {
	auth     *stubAuthService
	sessions *stubSessionService
	handler  *handlers.AuthHandler
}

func newAuthHandlerFixture() *authHandlerFixture {
	f := &authHandlerFixture{
		auth: &stubAuthService{},
		sessions: &stubSessionService{
			principals: map[string]*services.Principal{
				"admin-token": adminPrincipal(models.AdminRoleAdmin),
				"super-token": adminPrincipal(models.AdminRoleSuperAdmin),
			},
		},
	}
	f.handler = handlers.NewAuthHandler(f.auth, f.sessions)
	return f
}

func TestAuthPostLogin(t *testing.T) {
	f := newAuthHandlerFixture()
	f.auth.loginResult = &services.AdminLoginResult{
		Token: "fresh-token",
		Admin: &models.Admin{ID: 1, Username: "root", Role: models.AdminRoleSuperAdmin},
	}

	body := `{"username":"root","password":"secret"}`
	rec := httptest.NewRecorder()
	f.handler.Post(rec, httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token": "fresh-token"`)
	assert.Contains(t, rec.Body.String(), `"username": "root"`)
	assert.Contains(t, rec.Body.String(), `"role": "super_admin"`)
}

func TestAuthPostLoginInvalidCredentials(t *testing.T) {
	f := newAuthHandlerFixture()
	f.auth.loginErr = services.ErrInvalidCredentials

	body := `{"username":"root","password":"wrong"}`
	rec := httptest.NewRecorder()
	f.handler.Post(rec, httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Неверный логин или пароль")
}

func TestAuthCreateAdminRequiresSuperAdmin(t *testing.T) {
	f := newAuthHandlerFixture()
	f.auth.createdAdmin = &models.Admin{ID: 5, Username: "moderator", Role: models.AdminRoleAdmin}

	body := `{"action":"create_admin","username":"moderator","password":"secret"}`

	rec := httptest.NewRecorder()
	f.handler.Post(rec, httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set("X-Auth-Token", "admin-token")
	rec = httptest.NewRecorder()
	f.handler.Post(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Super admin access required")

	req = httptest.NewRequest(http.MethodPost, "/auth", strings.NewReader(body))
	req.Header.Set("X-Auth-Token", "super-token")
	rec = httptest.NewRecorder()
	f.handler.Post(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"adminId": 5`)
}

func TestAuthDeleteAdmin(t *testing.T) {
	f := newAuthHandlerFixture()

	body := `{"action":"delete_admin","adminId":5}`
	req := httptest.NewRequest(http.MethodDelete, "/auth", strings.NewReader(body))
	req.Header.Set("X-Auth-Token", "super-token")
	rec := httptest.NewRecorder()
	f.handler.DeleteAdmin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, f.auth.deletedID)
}

func TestAuthDeleteSuperAdminForbidden(t *testing.T) {
	f := newAuthHandlerFixture()
	f.auth.deleteErr = services.ErrSuperAdminUndeletable

	body := `{"action":"delete_admin","adminId":1}`
	req := httptest.NewRequest(http.MethodDelete, "/auth", strings.NewReader(body))
	req.Header.Set("X-Auth-Token", "super-token")
	rec := httptest.NewRecorder()
	f.handler.DeleteAdmin(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Cannot delete super admin"}`, rec.Body.String())
}

func TestAuthListAdmins(t *testing.T) {
	f := newAuthHandlerFixture()
	f.auth.admins = []models.Admin{
		{ID: 1, Username: "root", Role: models.AdminRoleSuperAdmin},
		{ID: 2, Username: "moderator", Role: models.AdminRoleAdmin},
	}

	rec := httptest.NewRecorder()
	f.handler.ListAdmins(rec, httptest.NewRequest(http.MethodGet, "/auth?action=list_admins", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admins"`)
	assert.Contains(t, rec.Body.String(), `"moderator"`)
}

func TestAuthListAdminsInvalidAction(t *testing.T) {
	f := newAuthHandlerFixture()

	rec := httptest.NewRecorder()
	f.handler.ListAdmins(rec, httptest.NewRequest(http.MethodGet, "/auth?action=unknown", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid action")
}
