package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

// SettingsHandler обслуживает /settings: публичное чтение ключей и
// админское обновление.
type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.All(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"settings": settings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type settingsPutRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Put — upsert одной настройки. Админ гарантирован маршрутом.
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var input settingsPutRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.settingsService.Set(r.Context(), trimmed(input.Key), input.Value); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
