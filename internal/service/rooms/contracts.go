package rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/integrations/directory"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByLocationAndName(ctx context.Context, locationID int64, name string) (*domain.Room, error)
	GetByLocationID(ctx context.Context, locationID int64) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
}

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDateAndRoom(ctx context.Context, date time.Time, roomID int64) ([]*domain.Booking, error)
	DeleteBatch(ctx context.Context, bookings []*domain.Booking) error
}

// DirectoryClient интерфейс клиента корпоративного каталога
type DirectoryClient interface {
	GetUser(ctx context.Context, pid string) (*directory.User, error)
}

// NotifyClient интерфейс клиента сервиса уведомлений
type NotifyClient interface {
	RenderCancellationBody(ctx context.Context, template string, bookings []*domain.Booking) (string, error)
	Send(ctx context.Context, from, to, subject, body string, isHTML bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
