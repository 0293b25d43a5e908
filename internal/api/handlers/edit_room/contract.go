package edit_room

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

type RoomsService interface {
	EditRoom(ctx context.Context, req *models.EditRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
