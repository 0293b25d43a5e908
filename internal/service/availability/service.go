package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Service резолвер конфликтов бронирований
// Единственное определение "конфликта" — domain.Overlaps
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр резолвера конфликтов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// DoesMeetingClash проверяет, пересекается ли кандидат с бронированиями своей комнаты
// Возвращает признак конфликта и список пересекающихся бронирований
//
// Сохранённая строка самого кандидата из списка НЕ исключается: режим
// редактирования в движке доступности опирается на то, что кандидат,
// сдвинутый внутри собственного слота, виден как "конфликт с самим собой"
// (ровно одна запись с его же ID). Вызывающие, которым нужно исключить
// кандидата, фильтруют список по ID сами
func (s *Service) DoesMeetingClash(ctx context.Context, candidate *domain.Booking) (bool, []*domain.Booking, error) {
	if !candidate.IsValid() {
		s.logger.Warn("DoesMeetingClash: booking id=%d has invalid window %s - %s",
			candidate.ID, candidate.StartDate.Format(domain.DateTimeFormat), candidate.EndDate.Format(domain.DateTimeFormat))
		return false, nil, ErrInvalidBooking
	}

	bookings, err := s.bookingRepo.GetByRoomID(ctx, candidate.RoomID)
	if err != nil {
		s.logger.Error("DoesMeetingClash: failed to get bookings for room id=%d: %v", candidate.RoomID, err)
		return false, nil, fmt.Errorf("%w: DoesMeetingClash - repository error: %v", ErrInternal, err)
	}

	clashes := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if domain.BookingsOverlap(b, candidate.StartDate, candidate.EndDate) {
			clashes = append(clashes, b)
		}
	}

	s.logger.Info("DoesMeetingClash: booking id=%d room=%d window=%s - %s clashes=%d",
		candidate.ID, candidate.RoomID,
		candidate.StartDate.Format(domain.DateTimeFormat), candidate.EndDate.Format(domain.DateTimeFormat),
		len(clashes))

	return len(clashes) > 0, clashes, nil
}

// IsSelfOnlyClash проверяет, что единственный найденный конфликт — сам кандидат
// В этом случае перенос бронирования не требует смены комнаты
func IsSelfOnlyClash(candidate *domain.Booking, clashes []*domain.Booking) bool {
	return len(clashes) == 1 && clashes[0].ID == candidate.ID
}
