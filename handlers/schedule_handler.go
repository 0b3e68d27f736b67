package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

// ScheduleHandler обслуживает /schedule: сетка матчей и её публикация.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
	sessions        services.SessionService
}

func NewScheduleHandler(scheduleService services.ScheduleService, sessions services.SessionService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		sessions:        sessions,
	}
}

// Get отдаёт матчи списком. До публикации расписания обычный клиент видит
// пустой массив; админ с валидным токеном — всё.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("check_published") == "true" {
		published, err := h.scheduleService.Published(r.Context())
		if err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"published": published}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	matches, err := h.scheduleService.ListMatches(r.Context(), h.isAdmin(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Post — создание матча. Админ гарантирован маршрутом.
func (h *ScheduleHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matchID, err := h.scheduleService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"id": matchID, "message": "Match created"}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type schedulePutRequest struct {
	PublishSchedule *bool `json:"publish_schedule"`
	services.UpdateMatchInput
}

// Put совмещает два сценария: переключение флага публикации и обновление
// результата матча. Различаются наличием поля publish_schedule.
func (h *ScheduleHandler) Put(w http.ResponseWriter, r *http.Request) {
	var input schedulePutRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if input.PublishSchedule != nil {
		if err := h.scheduleService.SetPublished(r.Context(), *input.PublishSchedule); err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	if err := h.scheduleService.UpdateMatch(r.Context(), input.UpdateMatchInput); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete — удаление одного матча по ?id=N либо всех по ?clear_all=true.
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	if params.Get("clear_all") == "true" {
		if err := h.scheduleService.ClearMatches(r.Context()); err != nil {
			mapServiceErrorToHTTP(w, r, err)
			return
		}
		if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
			serverErrorResponse(w, r, err)
		}
		return
	}

	matchID, err := strconv.Atoi(params.Get("id"))
	if err != nil {
		badRequestResponse(w, r, errors.New("invalid id parameter"))
		return
	}

	if err := h.scheduleService.DeleteMatch(r.Context(), matchID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) isAdmin(r *http.Request) bool {
	token := adminTokenFromRequest(r)
	if token == "" {
		return false
	}
	principal, err := h.sessions.Verify(r.Context(), token)
	return err == nil && principal.IsAdmin()
}
