package check_booking_clash

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type AvailabilityService interface {
	DoesMeetingClash(ctx context.Context, candidate *domain.Booking) (bool, []*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
