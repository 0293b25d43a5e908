package toggle_location_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

const (
	msgInvalidLocationID  = "некорректный ID локации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLocationNotFound   = "локация не найдена"
)

type Handler struct {
	service RoomsService
	email   models.EmailSettings
	logger  Logger
}

func NewHandler(service RoomsService, email models.EmailSettings, logger Logger) *Handler {
	return &Handler{
		service: service,
		email:   email,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/locations/{locationId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /locations/{id}/active - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req ToggleActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /locations/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ToggleLocationActive(r.Context(), locationID, req.Active, h.email); err != nil {
		switch {
		case errors.Is(err, rooms.ErrLocationNotFound):
			h.logger.Warn("PATCH /locations/{id}/active - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("PATCH /locations/{id}/active - Failed to toggle location: location_id=%d, active=%t, error=%v",
				locationID, req.Active, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /locations/{id}/active - Location toggled successfully: location_id=%d, active=%t",
		locationID, req.Active)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
