package check_booking_clash

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM"
	msgInvalidWindow      = "некорректное временное окно бронирования"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check-clash
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckClashRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check-clash - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	candidate, err := req.ToCandidate()
	if err != nil {
		h.logger.Warn("POST /bookings/check-clash - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	clash, clashes, err := h.service.DoesMeetingClash(r.Context(), candidate)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidBooking):
			h.logger.Warn("POST /bookings/check-clash - Invalid window: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("POST /bookings/check-clash - Failed to check clash: room_id=%d, error=%v",
				req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	selfOnly := clash && req.BookingID != nil && availability.IsSelfOnlyClash(candidate, clashes)
	response := FromClashes(clash, selfOnly, clashes)

	h.logger.Info("POST /bookings/check-clash - Clash checked: room_id=%d, clash=%t, clashes_count=%d",
		req.RoomID, clash, len(clashes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
