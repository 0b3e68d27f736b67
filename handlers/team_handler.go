package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

// TeamHandler обслуживает /teams: заявки команд и одиночных игроков.
// Эндпоинт исторически диспетчеризуется по query-параметрам и полям тела,
// поэтому проверки прав выполняются внутри обработчиков, а не маршрутом.
type TeamHandler struct {
	teamService   services.TeamService
	playerService services.PlayerService
	sessions      services.SessionService
}

func NewTeamHandler(
	teamService services.TeamService,
	playerService services.PlayerService,
	sessions services.SessionService,
) *TeamHandler {
	return &TeamHandler{
		teamService:   teamService,
		playerService: playerService,
		sessions:      sessions,
	}
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	if params.Get("action") == "team-login" {
		errorResponse(w, r, http.StatusMethodNotAllowed, "Use POST method for team login")
		return
	}

	if params.Get("type") == "individual" {
		players, err := h.playerService.List(r.Context())
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	if rawID := params.Get("teamId"); rawID != "" {
		teamID, err := strconv.Atoi(rawID)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid teamId parameter"))
			return
		}
		team, err := h.teamService.GetByID(r.Context(), teamID)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	status := models.RegistrationStatus(params.Get("status"))
	if status == "" {
		status = models.StatusApproved
	}
	if !status.Valid() {
		badRequestResponse(w, r, services.ErrInvalidStatus)
		return
	}

	teams, err := h.teamService.ListByStatus(r.Context(), status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type teamPostRequest struct {
	Action   string `json:"action"`
	Type     string `json:"type"`
	Password string `json:"password"`

	// Команда
	TeamName        string `json:"teamName"`
	CaptainNick     string `json:"captainNick"`
	CaptainTelegram string `json:"captainTelegram"`
	services.RosterInput

	// Одиночный игрок
	Nickname        string   `json:"nickname"`
	Telegram        string   `json:"telegram"`
	PreferredRoles  []string `json:"preferredRoles"`
	HasFriends      bool     `json:"hasFriends"`
	Friend1Nickname string   `json:"friend1Nickname"`
	Friend1Telegram string   `json:"friend1Telegram"`
	Friend1Roles    []string `json:"friend1Roles"`
	Friend2Nickname string   `json:"friend2Nickname"`
	Friend2Telegram string   `json:"friend2Telegram"`
	Friend2Roles    []string `json:"friend2Roles"`
}

func (h *TeamHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input teamPostRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if r.URL.Query().Get("action") == "team-login" || input.Action == "team-login" {
		team, err := h.teamService.TeamLogin(r.Context(), input.TeamName, input.Password)
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "team": team}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	if input.Type == "individual" {
		playerID, err := h.playerService.Register(r.Context(), services.RegisterPlayerInput{
			Nickname:        trimmed(input.Nickname),
			Telegram:        trimmed(input.Telegram),
			Password:        input.Password,
			PreferredRoles:  input.PreferredRoles,
			HasFriends:      input.HasFriends,
			Friend1Nickname: trimmed(input.Friend1Nickname),
			Friend1Telegram: trimmed(input.Friend1Telegram),
			Friend1Roles:    input.Friend1Roles,
			Friend2Nickname: trimmed(input.Friend2Nickname),
			Friend2Telegram: trimmed(input.Friend2Telegram),
			Friend2Roles:    input.Friend2Roles,
		})
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "playerId": playerID}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	teamID, err := h.teamService.Register(r.Context(), services.RegisterTeamInput{
		TeamName:        trimmed(input.TeamName),
		CaptainNick:     trimmed(input.CaptainNick),
		CaptainTelegram: trimmed(input.CaptainTelegram),
		Password:        input.Password,
		RosterInput:     input.RosterInput,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "teamId": teamID}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type teamPutRequest struct {
	Action   string `json:"action"`
	TeamID   int    `json:"teamId"`
	PlayerID int    `json:"playerId"`
	Status   string `json:"status"`
	TeamName string `json:"teamName"`
	services.RosterInput
}

func (h *TeamHandler) Put(w http.ResponseWriter, r *http.Request) {
	var input teamPutRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// Смена статуса одиночного игрока — решение модератора.
	if input.PlayerID > 0 && input.Action == "" {
		if !h.requireAdmin(w, r) {
			return
		}
		if err := h.playerService.UpdateStatus(r.Context(), input.PlayerID, models.RegistrationStatus(input.Status)); err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		h.writeSuccess(w, r)
		return
	}

	if input.Action == "update" {
		h.update(w, r, input)
		return
	}

	// Одобрение/отклонение команды.
	if !h.requireAdmin(w, r) {
		return
	}
	if err := h.teamService.UpdateStatus(r.Context(), input.TeamID, models.RegistrationStatus(input.Status)); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeSuccess(w, r)
}

// update — редактирование составов. Допускаются админ и капитан самой
// команды; для капитана заявка принудительно возвращается на модерацию.
func (h *TeamHandler) update(w http.ResponseWriter, r *http.Request, input teamPutRequest) {
	adminToken := adminTokenFromRequest(r)
	sessionToken := r.Header.Get("X-Session-Token")

	if adminToken == "" && sessionToken == "" {
		unauthorizedResponse(w, r, "Unauthorized")
		return
	}

	isAdmin := false
	if adminToken != "" {
		if principal, err := h.sessions.Verify(r.Context(), adminToken); err == nil && principal.IsAdmin() {
			isAdmin = true
		}
	}

	isCaptain := false
	if !isAdmin && sessionToken != "" {
		if principal, err := h.sessions.Verify(r.Context(), sessionToken); err == nil && principal.OwnsTeam(input.TeamID) {
			isCaptain = true
		}
	}

	if !isAdmin && !isCaptain {
		forbiddenResponse(w, r, services.ErrEditForbidden.Error())
		return
	}

	update := services.UpdateTeamInput{
		TeamName:    trimmed(input.TeamName),
		RosterInput: input.RosterInput,
	}

	var err error
	if isAdmin {
		err = h.teamService.UpdateByAdmin(r.Context(), input.TeamID, update)
	} else {
		err = h.teamService.UpdateByCaptain(r.Context(), input.TeamID, update)
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeSuccess(w, r)
}

type teamDeleteRequest struct {
	Action      string `json:"action"`
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Password    string `json:"password"`
	AdminAction bool   `json:"adminAction"`
	TeamID      int    `json:"teamId"`
	PlayerID    int    `json:"playerId"`
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var input teamDeleteRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	adminToken := adminTokenFromRequest(r)

	// Полная очистка заявок — только супер-админ.
	if input.Action == "clear_all" {
		if adminToken == "" {
			unauthorizedResponse(w, r, "Unauthorized")
			return
		}
		principal, err := h.sessions.Verify(r.Context(), adminToken)
		if err != nil || !principal.IsSuperAdmin() {
			forbiddenResponse(w, r, services.ErrSuperAdminRequired.Error())
			return
		}
		teamsDeleted, playersDeleted, err := h.teamService.ClearAll(r.Context())
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		response := jsonResponse{
			"success":        true,
			"deletedTeams":   teamsDeleted,
			"deletedPlayers": playersDeleted,
		}
		if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	// Точечное удаление админом.
	if (input.TeamID > 0 || input.PlayerID > 0) && adminToken != "" {
		principal, err := h.sessions.Verify(r.Context(), adminToken)
		if err != nil || !principal.IsAdmin() {
			forbiddenResponse(w, r, services.ErrAdminRequired.Error())
			return
		}
		if input.TeamID > 0 {
			err = h.teamService.Delete(r.Context(), input.TeamID)
		} else {
			err = h.playerService.Delete(r.Context(), input.PlayerID)
		}
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		h.writeSuccess(w, r)
		return
	}

	// Тот же сценарий в старом формате тела (adminAction + id/type).
	if input.AdminAction {
		if adminToken == "" {
			unauthorizedResponse(w, r, "Unauthorized")
			return
		}
		principal, err := h.sessions.Verify(r.Context(), adminToken)
		if err != nil || !principal.IsAdmin() {
			forbiddenResponse(w, r, "Admin access required")
			return
		}
		switch input.Type {
		case "team":
			err = h.teamService.Delete(r.Context(), input.ID)
		case "player":
			err = h.playerService.Delete(r.Context(), input.ID)
		default:
			badRequestResponse(w, r, services.ErrDeleteFieldsRequired)
			return
		}
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		h.writeSuccess(w, r)
		return
	}

	// Самостоятельное снятие заявки по паролю.
	if input.ID <= 0 || input.Password == "" || input.Type == "" {
		badRequestResponse(w, r, services.ErrDeleteFieldsRequired)
		return
	}

	var err error
	switch input.Type {
	case "team":
		err = h.teamService.DeleteWithPassword(r.Context(), input.ID, input.Password)
	case "player":
		err = h.playerService.DeleteWithPassword(r.Context(), input.ID, input.Password)
	default:
		badRequestResponse(w, r, services.ErrDeleteFieldsRequired)
		return
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.writeSuccess(w, r)
}

// requireAdmin — инлайн-гейт для операций, диспетчеризуемых по телу.
func (h *TeamHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := adminTokenFromRequest(r)
	if token == "" {
		unauthorizedResponse(w, r, "Unauthorized")
		return false
	}
	principal, err := h.sessions.Verify(r.Context(), token)
	if err != nil || !principal.IsAdmin() {
		forbiddenResponse(w, r, services.ErrAdminRequired.Error())
		return false
	}
	return true
}

func (h *TeamHandler) writeSuccess(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
