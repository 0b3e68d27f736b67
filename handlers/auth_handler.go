package handlers

import (
	"net/http"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

// AuthHandler обслуживает /auth: вход админов и управление их учётками.
// POST диспетчеризуется по полю action в теле, поэтому супер-админ
// проверяется здесь, а не route-level middleware.
type AuthHandler struct {
	authService services.AuthService
	sessions    services.SessionService
}

func NewAuthHandler(authService services.AuthService, sessions services.SessionService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

type authRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
	AdminID  int    `json:"adminId"`
}

// ListAdmins — GET /auth?action=list_admins. Супер-админ гарантирован
// маршрутом (RequireSuperAdmin).
func (h *AuthHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("action") != "list_admins" {
		badRequestResponse(w, r, errInvalidAction)
		return
	}

	admins, err := h.authService.ListAdmins(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"admins": admins}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Post — POST /auth: action=login либо action=create_admin.
func (h *AuthHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input authRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	switch input.Action {
	case "create_admin":
		if !h.requireSuperAdmin(w, r) {
			return
		}
		admin, err := h.authService.CreateAdmin(r.Context(), trimmed(input.Username), input.Password)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "adminId": admin.ID}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}

	default: // login
		result, err := h.authService.Login(r.Context(), trimmed(input.Username), input.Password)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		response := jsonResponse{
			"success":  true,
			"token":    result.Token,
			"username": result.Admin.Username,
			"role":     result.Admin.Role,
		}
		if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
	}
}

// DeleteAdmin — DELETE /auth с action=delete_admin.
func (h *AuthHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.requireSuperAdmin(w, r) {
		return
	}

	var input authRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.authService.DeleteAdmin(r.Context(), input.AdminID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AuthHandler) requireSuperAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := adminTokenFromRequest(r)
	if token == "" {
		unauthorizedResponse(w, r, "Unauthorized")
		return false
	}
	principal, err := h.sessions.Verify(r.Context(), token)
	if err != nil || !principal.IsSuperAdmin() {
		forbiddenResponse(w, r, "Super admin access required")
		return false
	}
	return true
}
