package get_location_schedule

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// UseCase use case дневного снапшота локации: все активные комнаты
// с их бронированиями на запрошенную дату
//
// Запросы доступности никогда не возвращают ошибку вызывающему:
// неизвестная локация и сбои хранилища логируются и дают пустой
// результат. API трактует "пусто" как "ни одна комната не подходит"
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case дневного снапшота
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("GetLocationSchedule: location=%q, date=%s, smartOnly=%t",
		req.LocationName, req.Date.Format(domain.DateFormat), req.SmartOnly)

	resp := &Response{
		LocationName: req.LocationName,
		Date:         req.Date,
		Rooms:        []RoomSchedule{},
	}

	if req.LocationName == "" {
		uc.logger.Warn("GetLocationSchedule: empty location name")
		return resp
	}

	rooms, err := uc.roomRepo.GetActiveByLocationName(ctx, req.LocationName)
	if err != nil {
		uc.logger.Error("GetLocationSchedule: failed to get rooms for location=%q: %v", req.LocationName, err)
		return resp
	}

	if req.SmartOnly {
		rooms = filterSmartRooms(rooms)
	}

	if len(rooms) == 0 {
		uc.logger.Info("GetLocationSchedule: no active rooms for location=%q", req.LocationName)
		return resp
	}

	roomIDs := make([]int64, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	bookings, err := uc.bookingRepo.GetByDateAndRooms(ctx, req.Date, roomIDs)
	if err != nil {
		uc.logger.Error("GetLocationSchedule: failed to get bookings for location=%q: %v", req.LocationName, err)
		return resp
	}

	byRoom := make(map[int64][]BookingInfo, len(rooms))
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], BookingInfo{
			ID:             b.ID,
			Owner:          b.Owner,
			Subject:        b.Subject,
			StartDate:      b.StartDate,
			EndDate:        b.EndDate,
			IsSmartMeeting: b.IsSmartMeeting,
		})
	}

	for _, room := range rooms {
		roomBookings := byRoom[room.ID]
		if roomBookings == nil {
			roomBookings = []BookingInfo{}
		}
		resp.Rooms = append(resp.Rooms, RoomSchedule{
			ID:            room.ID,
			Name:          room.Name,
			SeatCount:     room.SeatCount,
			PhoneCount:    room.PhoneCount,
			ComputerCount: room.ComputerCount,
			SmartRoom:     room.SmartRoom,
			Bookings:      roomBookings,
		})
	}

	uc.logger.Info("GetLocationSchedule: returning %d rooms for location=%q", len(resp.Rooms), req.LocationName)
	return resp
}

// filterSmartRooms оставляет только smart-комнаты, сохраняя порядок
func filterSmartRooms(rooms []*domain.Room) []*domain.Room {
	filtered := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.SmartRoom {
			filtered = append(filtered, room)
		}
	}
	return filtered
}
