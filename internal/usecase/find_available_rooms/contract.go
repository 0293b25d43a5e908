package find_available_rooms

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	// GetActiveByLocationName возвращает активные комнаты локации,
	// отсортированные по вместимости (стабильно)
	GetActiveByLocationName(ctx context.Context, locationName string) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRoomIDs(ctx context.Context, roomIDs []int64) ([]*domain.Booking, error)
}

// ClashResolver интерфейс резолвера конфликтов бронирований
type ClashResolver interface {
	DoesMeetingClash(ctx context.Context, candidate *domain.Booking) (bool, []*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
