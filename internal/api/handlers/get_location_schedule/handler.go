package get_location_schedule

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	getLocationSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_location_schedule"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetLocationScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetLocationScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{location}/schedule
// Query params: date (required, YYYY-MM-DD), smartOnly (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locationName := vars["location"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /locations/{location}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /locations/{location}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	smartOnly, _ := strconv.ParseBool(r.URL.Query().Get("smartOnly"))

	result := h.useCase.Execute(r.Context(), &getLocationSchedule.Request{
		LocationName: locationName,
		Date:         date,
		SmartOnly:    smartOnly,
	})

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /locations/{location}/schedule - Schedule retrieved: location=%q, date=%s, rooms_count=%d",
		locationName, dateStr, len(response.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
