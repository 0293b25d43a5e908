package toggle_room_active

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
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "комната не найдена"
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

// Handle PATCH /api/v1/rooms/{roomId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/active - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req ToggleActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ToggleRoomActive(r.Context(), roomID, req.Active, h.email); err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/active - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PATCH /rooms/{id}/active - Failed to toggle room: room_id=%d, active=%t, error=%v",
				roomID, req.Active, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/active - Room toggled successfully: room_id=%d, active=%t", roomID, req.Active)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
