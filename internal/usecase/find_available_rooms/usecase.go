package find_available_rooms

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/availability"
)

// UseCase use case поиска свободных комнат в окне [start, end)
//
// Сбои хранилища и неизвестная локация логируются и дают пустой результат:
// вызывающий никогда не видит транспортную ошибку внутреннего хранилища
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	resolver    ClashResolver
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, resolver ClashResolver, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// Execute выполняет поиск свободных комнат
// Возвращает ошибку только при некорректных входных данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableRooms: location=%q, window=%s - %s, capacity=%d, smart=%t",
		req.LocationName, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat),
		req.MinCapacity, req.SmartRoom)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		LocationName: req.LocationName,
		Start:        req.Start,
		End:          req.End,
		Rooms:        []AvailableRoom{},
	}

	if req.LocationName == "" {
		uc.logger.Warn("FindAvailableRooms: empty location name")
		return resp, nil
	}

	// Режим редактирования: бронирование, сдвинутое внутри собственного
	// слота, оставляет за собой свою комнату без полного сканирования
	if req.ExcludeBookingID != nil {
		room, done := uc.trySelfRoomShortCircuit(ctx, req)
		if done {
			if room != nil {
				resp.Rooms = append(resp.Rooms, toAvailableRoom(room))
			}
			return resp, nil
		}
	}

	rooms := uc.scanRooms(ctx, req)
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, toAvailableRoom(room))
	}

	uc.logger.Info("FindAvailableRooms: returning %d rooms for location=%q", len(resp.Rooms), req.LocationName)
	return resp, nil
}

// trySelfRoomShortCircuit проверяет, конфликтует ли редактируемое бронирование
// только с самим собой. Возвращает (комната, true), если поиск завершён без
// полного сканирования; (nil, true) — если запрос деградировал в пустой результат
func (uc *UseCase) trySelfRoomShortCircuit(ctx context.Context, req *Request) (*domain.Room, bool) {
	existing, err := uc.bookingRepo.GetByID(ctx, *req.ExcludeBookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("FindAvailableRooms: booking id=%d not found", *req.ExcludeBookingID)
		} else {
			uc.logger.Error("FindAvailableRooms: failed to get booking id=%d: %v", *req.ExcludeBookingID, err)
		}
		return nil, true
	}

	// Кандидат — существующее бронирование с новым временным окном
	existing.StartDate = req.Start
	existing.EndDate = req.End

	clash, clashes, err := uc.resolver.DoesMeetingClash(ctx, existing)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: clash check failed for booking id=%d: %v", existing.ID, err)
		return nil, true
	}

	if clash && availability.IsSelfOnlyClash(existing, clashes) {
		room, err := uc.roomRepo.GetByID(ctx, existing.RoomID)
		if err != nil {
			uc.logger.Error("FindAvailableRooms: failed to get room id=%d: %v", existing.RoomID, err)
			return nil, true
		}
		uc.logger.Info("FindAvailableRooms: booking id=%d clashes only with itself, keeping room id=%d",
			existing.ID, room.ID)
		return room, true
	}

	return nil, false
}

// scanRooms выполняет полное сканирование комнат локации с фильтрами
// вместимости, smart-флага и пересечений по окну запроса
func (uc *UseCase) scanRooms(ctx context.Context, req *Request) []*domain.Room {
	rooms, err := uc.roomRepo.GetActiveByLocationName(ctx, req.LocationName)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get rooms for location=%q: %v", req.LocationName, err)
		return nil
	}

	candidates := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.SeatCount < req.MinCapacity {
			continue
		}
		if !matchesSmartFilter(room, req) {
			continue
		}
		candidates = append(candidates, room)
	}

	if len(candidates) == 0 {
		return nil
	}

	roomIDs := make([]int64, len(candidates))
	for i, room := range candidates {
		roomIDs[i] = room.ID
	}

	bookings, err := uc.bookingRepo.GetByRoomIDs(ctx, roomIDs)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get bookings for location=%q: %v", req.LocationName, err)
		return nil
	}

	busy := make(map[int64]bool)
	for _, b := range bookings {
		// Собственный слот редактируемого бронирования не блокирует комнату
		if req.ExcludeBookingID != nil && b.ID == *req.ExcludeBookingID {
			continue
		}
		if domain.BookingsOverlap(b, req.Start, req.End) {
			busy[b.RoomID] = true
		}
	}

	available := make([]*domain.Room, 0, len(candidates))
	for _, room := range candidates {
		if !busy[room.ID] {
			available = append(available, room)
		}
	}

	return available
}

// matchesSmartFilter применяет фильтр smart-комнат
// В обычном режиме smart=true сужает до smart-комнат, smart=false не фильтрует.
// В режиме редактирования флаг сравнивается строго, чтобы перенос
// не предлагал комнату другого типа
func matchesSmartFilter(room *domain.Room, req *Request) bool {
	if req.ExcludeBookingID != nil {
		return room.SmartRoom == req.SmartRoom
	}
	if req.SmartRoom {
		return room.SmartRoom
	}
	return true
}

func toAvailableRoom(room *domain.Room) AvailableRoom {
	return AvailableRoom{
		ID:            room.ID,
		Name:          room.Name,
		SeatCount:     room.SeatCount,
		PhoneCount:    room.PhoneCount,
		ComputerCount: room.ComputerCount,
		SmartRoom:     room.SmartRoom,
	}
}
