package toggle_location_active

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

type RoomsService interface {
	ToggleLocationActive(ctx context.Context, locationID int64, active bool, email models.EmailSettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
