package http

import (
	"net/http"

	"learnhub-backend/internal/service"
)

type SettingsHandler struct {
	settingsSvc service.SettingsService
}

func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

type maintenanceResponse struct {
	Enabled bool `json:"enabled"`
}

func (h *SettingsHandler) GetMaintenance(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settingsSvc.MaintenanceMode(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, maintenanceResponse{Enabled: enabled})
}

func (h *SettingsHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	c, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var body maintenanceResponse
	if !decodeBody(w, r, &body) {
		return
	}

	if err := h.settingsSvc.SetMaintenanceMode(r.Context(), c.UserID, body.Enabled); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, maintenanceResponse{Enabled: body.Enabled})
}
