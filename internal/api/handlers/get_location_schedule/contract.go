package get_location_schedule

import (
	"context"

	getLocationSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_location_schedule"
)

type GetLocationScheduleUseCase interface {
	Execute(ctx context.Context, req *getLocationSchedule.Request) *getLocationSchedule.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
