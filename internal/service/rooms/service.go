package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	locationRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/location"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

// Service сервис жизненного цикла комнат и локаций
// Отвечает за редактирование с проверкой уникальности имени и за
// каскадную деактивацию с удалением бронирований и уведомлением владельцев
type Service struct {
	roomRepo     RoomRepository
	locationRepo LocationRepository
	bookingRepo  BookingRepository
	directory    DirectoryClient
	notify       NotifyClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса жизненного цикла
func NewService(
	roomRepo RoomRepository,
	locationRepo LocationRepository,
	bookingRepo BookingRepository,
	directory DirectoryClient,
	notify NotifyClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		locationRepo: locationRepo,
		bookingRepo:  bookingRepo,
		directory:    directory,
		notify:       notify,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// EditRoom редактирует комнату с проверкой уникальности имени в пределах локации
// При конфликте имени возвращает ErrRoomExists, состояние в БД не меняется
func (s *Service) EditRoom(ctx context.Context, req *models.EditRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("EditRoom: editing room id=%d, name=%q", req.RoomID, req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("EditRoom: empty room name for room id=%d", req.RoomID)
		return nil, fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}
	if req.SeatCount < domain.MinSeatCount || req.SeatCount > domain.MaxSeatCount {
		s.logger.Warn("EditRoom: invalid seat count %d for room id=%d", req.SeatCount, req.RoomID)
		return nil, fmt.Errorf("%w: seat count must be between %d and %d",
			ErrInvalidInput, domain.MinSeatCount, domain.MaxSeatCount)
	}

	original, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("EditRoom: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("EditRoom: repository error for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: EditRoom - repository error: %v", ErrInternal, err)
	}

	location, err := s.locationRepo.GetByID(ctx, original.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("EditRoom: location id=%d not found for room id=%d", original.LocationID, req.RoomID)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("EditRoom: failed to get location id=%d: %v", original.LocationID, err)
		return nil, fmt.Errorf("%w: EditRoom - failed to get location: %v", ErrInternal, err)
	}

	// Проверка уникальности имени выполняется всегда, по ключу (локация, имя).
	// Найденная комната с тем же ID и неизменённым именем — это "нашли себя",
	// не конфликт: переименование комнаты в её же текущее имя никогда не падает
	if err := s.checkNameCollision(ctx, location, original, req.Name); err != nil {
		return nil, err
	}

	original.Name = req.Name
	original.SeatCount = req.SeatCount
	original.PhoneCount = req.PhoneCount
	original.ComputerCount = req.ComputerCount
	original.SmartRoom = req.SmartRoom

	if err := s.roomRepo.Update(ctx, original); err != nil {
		s.logger.Error("EditRoom: failed to update room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: EditRoom - failed to update room: %v", ErrInternal, err)
	}

	s.logger.Info("EditRoom: successfully updated room id=%d", original.ID)
	return models.FromDomainRoom(original), nil
}

// checkNameCollision ищет комнату по (локация, имя) и трактует результат:
// ничего не найдено или найдена сама редактируемая комната — конфликта нет,
// найдена другая комната — ErrRoomExists
func (s *Service) checkNameCollision(ctx context.Context, location *domain.Location, original *domain.Room, name string) error {
	existing, err := s.roomRepo.GetByLocationAndName(ctx, location.ID, name)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil
		}
		s.logger.Error("EditRoom: failed to check name collision for location id=%d, name=%q: %v",
			location.ID, name, err)
		return fmt.Errorf("%w: EditRoom - failed to check name collision: %v", ErrInternal, err)
	}

	if existing.ID != original.ID {
		s.logger.Warn("EditRoom: room name %q already used by room id=%d in location id=%d",
			name, existing.ID, location.ID)
		return fmt.Errorf("%w: name %q in location %q", ErrRoomExists, name, location.Name)
	}

	return nil
}

// ToggleRoomActive переключает флаг активности комнаты
// Активация — только смена флага, без побочных эффектов
// Деактивация дополнительно запускает каскад: удаление сегодняшних
// бронирований одним пакетом и уведомление каждого владельца
func (s *Service) ToggleRoomActive(ctx context.Context, roomID int64, active bool, email models.EmailSettings) error {
	s.logger.Info("ToggleRoomActive: room id=%d, active=%t", roomID, active)

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("ToggleRoomActive: room id=%d not found", roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("ToggleRoomActive: repository error for room id=%d: %v", roomID, err)
		return fmt.Errorf("%w: ToggleRoomActive - repository error: %v", ErrInternal, err)
	}

	room.Active = active

	if active {
		if err := s.roomRepo.Update(ctx, room); err != nil {
			s.logger.Error("ToggleRoomActive: failed to update room id=%d: %v", roomID, err)
			return fmt.Errorf("%w: ToggleRoomActive - failed to update room: %v", ErrInternal, err)
		}
		s.logger.Info("ToggleRoomActive: room id=%d activated", roomID)
		return nil
	}

	// Смена флага, выборка и пакетное удаление выполняются в одной транзакции:
	// каскад одной комнаты не должен чередоваться с другим toggle той же комнаты
	var cancelled []*domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.roomRepo.Update(txCtx, room); err != nil {
			return fmt.Errorf("%w: ToggleRoomActive - failed to update room: %v", ErrInternal, err)
		}

		bookings, err := s.cancelTodayBookings(txCtx, room.ID)
		if err != nil {
			return err
		}

		cancelled = bookings
		return nil
	})

	if err != nil {
		s.logger.Error("ToggleRoomActive: cascade failed for room id=%d: %v", roomID, err)
		return err
	}

	s.logger.Info("ToggleRoomActive: room id=%d deactivated, %d bookings cancelled", roomID, len(cancelled))

	// Уведомления отправляются после фиксации транзакции: сбой доставки
	// не должен откатывать уже выполненное удаление
	s.notifyCancelledOwners(ctx, cancelled, email)
	return nil
}

// ToggleLocationActive переключает флаг активности локации
// Деактивация каскадом проходит по всем комнатам локации и, транзитивно,
// по всем их сегодняшним бронированиям
func (s *Service) ToggleLocationActive(ctx context.Context, locationID int64, active bool, email models.EmailSettings) error {
	s.logger.Info("ToggleLocationActive: location id=%d, active=%t", locationID, active)

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("ToggleLocationActive: location id=%d not found", locationID)
			return ErrLocationNotFound
		}
		s.logger.Error("ToggleLocationActive: repository error for location id=%d: %v", locationID, err)
		return fmt.Errorf("%w: ToggleLocationActive - repository error: %v", ErrInternal, err)
	}

	location.Active = active

	if active {
		if err := s.locationRepo.Update(ctx, location); err != nil {
			s.logger.Error("ToggleLocationActive: failed to update location id=%d: %v", locationID, err)
			return fmt.Errorf("%w: ToggleLocationActive - failed to update location: %v", ErrInternal, err)
		}
		s.logger.Info("ToggleLocationActive: location id=%d activated", locationID)
		return nil
	}

	var cancelled []*domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.locationRepo.Update(txCtx, location); err != nil {
			return fmt.Errorf("%w: ToggleLocationActive - failed to update location: %v", ErrInternal, err)
		}

		rooms, err := s.roomRepo.GetByLocationID(txCtx, location.ID)
		if err != nil {
			return fmt.Errorf("%w: ToggleLocationActive - failed to get rooms: %v", ErrInternal, err)
		}

		for _, room := range rooms {
			bookings, err := s.cancelTodayBookings(txCtx, room.ID)
			if err != nil {
				return err
			}
			cancelled = append(cancelled, bookings...)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("ToggleLocationActive: cascade failed for location id=%d: %v", locationID, err)
		return err
	}

	s.logger.Info("ToggleLocationActive: location id=%d deactivated, %d bookings cancelled",
		locationID, len(cancelled))

	s.notifyCancelledOwners(ctx, cancelled, email)
	return nil
}

// cancelTodayBookings выбирает сегодняшние бронирования комнаты и удаляет
// их одним пакетным вызовом. Возвращает удалённые бронирования
func (s *Service) cancelTodayBookings(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	today := s.timeProvider.Now()

	bookings, err := s.bookingRepo.GetByDateAndRoom(ctx, today, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings for room id=%d: %v", ErrInternal, roomID, err)
	}

	if len(bookings) == 0 {
		return nil, nil
	}

	if err := s.bookingRepo.DeleteBatch(ctx, bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to delete bookings for room id=%d: %v", ErrInternal, roomID, err)
	}

	return bookings, nil
}

// notifyCancelledOwners отправляет ровно одно уведомление на каждое отменённое
// бронирование, независимо от совпадения владельцев или комнат
// Сбой для одного бронирования логируется и не прерывает обработку остальных
func (s *Service) notifyCancelledOwners(ctx context.Context, bookings []*domain.Booking, email models.EmailSettings) {
	sent := 0

	for _, b := range bookings {
		user, err := s.directory.GetUser(ctx, b.PID)
		if err != nil {
			s.logger.Error("notifyCancelledOwners: failed to resolve owner pid=%s for booking id=%d: %v",
				b.PID, b.ID, err)
			continue
		}

		body, err := s.notify.RenderCancellationBody(ctx, email.Template, []*domain.Booking{b})
		if err != nil {
			s.logger.Error("notifyCancelledOwners: failed to render body for booking id=%d: %v", b.ID, err)
			continue
		}

		if err := s.notify.Send(ctx, email.FromEmail, user.Email, email.Subject, body, true); err != nil {
			s.logger.Error("notifyCancelledOwners: failed to send notification to=%s for booking id=%d: %v",
				user.Email, b.ID, err)
			continue
		}

		sent++
	}

	if len(bookings) > 0 {
		s.logger.Info("notifyCancelledOwners: sent %d/%d cancellation notifications", sent, len(bookings))
	}
}
