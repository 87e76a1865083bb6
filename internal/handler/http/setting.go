package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffhub-dev/attendance-backend-go/internal/domain/setting"
	"github.com/staffhub-dev/attendance-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	GetStandardHours(w http.ResponseWriter, r *http.Request)
	UpdateStandardHours(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{
		settingService: settingService,
	}
}

type standardHoursPayload struct {
	StandardHours int `json:"standard_hours"`
}

// GetStandardHours implements SettingHandler (admin).
func (h *settingHandlerImpl) GetStandardHours(w http.ResponseWriter, r *http.Request) {
	hours, err := h.settingService.GetStandardHours(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, standardHoursPayload{StandardHours: hours})
}

// UpdateStandardHours implements SettingHandler (admin).
func (h *settingHandlerImpl) UpdateStandardHours(w http.ResponseWriter, r *http.Request) {
	var req standardHoursPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode setting update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingService.UpdateStandardHours(r.Context(), req.StandardHours); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Standard hours updated", standardHoursPayload{StandardHours: req.StandardHours})
}
