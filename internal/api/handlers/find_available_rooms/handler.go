package find_available_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	findAvailableRooms "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/find_available_rooms"
)

const (
	msgMissingWindow      = "параметры start и end обязательны"
	msgInvalidDateTime    = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM"
	msgInvalidWindow      = "начало окна должно быть раньше конца"
	msgInvalidCapacity    = "некорректная вместимость"
	msgInvalidExcludeID   = "некорректный ID бронирования"
	msgInvalidQueryParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{location}/available-rooms
// Query params: start, end (required, YYYY-MM-DD HH:MM), capacity (optional),
// smartRoom (optional, bool), excludeBookingId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationName := vars["location"]
	query := r.URL.Query()

	startStr := query.Get("start")
	endStr := query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /locations/{location}/available-rooms - Missing start or end")
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	start, err := time.Parse(domain.DateTimeFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /locations/{location}/available-rooms - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	end, err := time.Parse(domain.DateTimeFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /locations/{location}/available-rooms - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	capacity := 0
	if capacityStr := query.Get("capacity"); capacityStr != "" {
		capacity, err = strconv.Atoi(capacityStr)
		if err != nil {
			h.logger.Warn("GET /locations/{location}/available-rooms - Invalid capacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapacity)
			return
		}
	}

	smartRoom, _ := strconv.ParseBool(query.Get("smartRoom"))

	var excludeBookingID *int64
	if excludeStr := query.Get("excludeBookingId"); excludeStr != "" {
		id, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /locations/{location}/available-rooms - Invalid excludeBookingId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeBookingID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &findAvailableRooms.Request{
		LocationName:     locationName,
		Start:            start,
		End:              end,
		MinCapacity:      capacity,
		SmartRoom:        smartRoom,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, findAvailableRooms.ErrInvalidWindow):
			h.logger.Warn("GET /locations/{location}/available-rooms - Invalid window: location=%q", locationName)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, findAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /locations/{location}/available-rooms - Invalid input: location=%q", locationName)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /locations/{location}/available-rooms - Failed to find rooms: location=%q, error=%v",
				locationName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /locations/{location}/available-rooms - Rooms retrieved: location=%q, rooms_count=%d",
		locationName, len(response.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
