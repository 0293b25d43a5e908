package get_location_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	// GetActiveByLocationName возвращает активные комнаты локации,
	// отсортированные по вместимости (стабильно)
	GetActiveByLocationName(ctx context.Context, locationName string) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDateAndRooms(ctx context.Context, date time.Time, roomIDs []int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
