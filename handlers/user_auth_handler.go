package handlers

import (
	"net/http"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

// UserAuthHandler обслуживает /user-auth: вход, проверка и завершение
// сессий капитанов и одиночных игроков.
type UserAuthHandler struct {
	sessions services.SessionService
}

func NewUserAuthHandler(sessions services.SessionService) *UserAuthHandler {
	return &UserAuthHandler{sessions: sessions}
}

type userAuthRequest struct {
	Action   string `json:"action"`
	Telegram string `json:"telegram"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

func (h *UserAuthHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input userAuthRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	switch input.Action {
	case "login":
		h.login(w, r, input)
	case "verify":
		h.verify(w, r, input)
	case "logout":
		h.logout(w, r, input)
	default:
		badRequestResponse(w, r, errInvalidAction)
	}
}

func (h *UserAuthHandler) login(w http.ResponseWriter, r *http.Request, input userAuthRequest) {
	result, err := h.sessions.Login(r.Context(), trimmed(input.Telegram), input.Password)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success":  true,
		"token":    result.Token,
		"userType": result.UserType,
	}
	switch result.UserType {
	case models.UserTypeTeamCaptain:
		response["teamId"] = result.Team.ID
		response["teamName"] = result.Team.TeamName
		response["captainNick"] = result.Team.CaptainNick
		response["teamStatus"] = result.Team.Status
	case models.UserTypeIndividualPlayer:
		response["playerId"] = result.Player.ID
		response["nickname"] = result.Player.Nickname
		response["preferredRoles"] = result.Player.PreferredRoles
		response["playerStatus"] = result.Player.Status
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// verify отдаёт профиль, перечитанный из таблицы-источника: смена статуса
// команды видна без повторного входа.
func (h *UserAuthHandler) verify(w http.ResponseWriter, r *http.Request, input userAuthRequest) {
	principal, err := h.sessions.Verify(r.Context(), input.Token)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"valid":    true,
		"userType": principal.UserType,
	}
	switch principal.UserType {
	case models.UserTypeTeamCaptain:
		response["teamId"] = principal.Team.ID
		response["teamName"] = principal.Team.TeamName
		response["captainNick"] = principal.Team.CaptainNick
		response["teamStatus"] = principal.Team.Status
	case models.UserTypeIndividualPlayer:
		response["playerId"] = principal.Player.ID
		response["nickname"] = principal.Player.Nickname
		response["preferredRoles"] = principal.Player.PreferredRoles
		response["playerStatus"] = principal.Player.Status
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *UserAuthHandler) logout(w http.ResponseWriter, r *http.Request, input userAuthRequest) {
	if err := h.sessions.Logout(r.Context(), input.Token); err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
