package toggle_room_active

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

type RoomsService interface {
	ToggleRoomActive(ctx context.Context, roomID int64, active bool, email models.EmailSettings) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
