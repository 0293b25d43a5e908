package find_available_rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/availability"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

type mockRoomRepo struct {
	rooms   []*domain.Room
	listErr error
	byIDErr error
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if m.byIDErr != nil {
		return nil, m.byIDErr
	}
	for _, r := range m.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("room: not found")
}

func (m *mockRoomRepo) GetActiveByLocationName(ctx context.Context, locationName string) ([]*domain.Room, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rooms, nil
}

type mockBookingRepo struct {
	bookings []*domain.Booking
	byIDErr  error
	listErr  error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.byIDErr != nil {
		return nil, m.byIDErr
	}
	for _, b := range m.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (m *mockBookingRepo) GetByRoomIDs(ctx context.Context, roomIDs []int64) ([]*domain.Booking, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	ids := make(map[int64]bool, len(roomIDs))
	for _, id := range roomIDs {
		ids[id] = true
	}
	var out []*domain.Booking
	for _, b := range m.bookings {
		if ids[b.RoomID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	return m.GetByRoomIDs(ctx, []int64{roomID})
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func newUseCase(rooms *mockRoomRepo, bookings *mockBookingRepo) *UseCase {
	resolver := availability.NewService(bookings, nopLogger{})
	return NewUseCase(rooms, bookings, resolver, nopLogger{})
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := newUseCase(&mockRoomRepo{}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(11, 0),
		End:          at(10, 0),
	})

	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExecute_MissingWindow(t *testing.T) {
	uc := newUseCase(&mockRoomRepo{}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{LocationName: "HQ"})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyLocationName(t *testing.T) {
	uc := newUseCase(&mockRoomRepo{rooms: []*domain.Room{{ID: 1, Active: true}}}, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Start: at(10, 0), End: at(11, 0)})

	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_FreeRoomsOnly(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Small", Active: true, SeatCount: 4},
		{ID: 2, Name: "Big", Active: true, SeatCount: 12},
	}}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, StartDate: at(10, 30), EndDate: at(11, 30)},
	}}
	uc := newUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)
}

func TestExecute_AdjacentBookingDoesNotBlock(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Small", Active: true, SeatCount: 4},
	}}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, StartDate: at(9, 0), EndDate: at(10, 0)},
		{ID: 101, RoomID: 1, StartDate: at(11, 0), EndDate: at(12, 0)},
	}}
	uc := newUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
}

func TestExecute_CapacityFilter(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Small", Active: true, SeatCount: 4},
		{ID: 2, Name: "Big", Active: true, SeatCount: 12},
	}}
	uc := newUseCase(rooms, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
		MinCapacity:  10,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)
}

func TestExecute_SmartFilter(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Plain", Active: true, SeatCount: 4},
		{ID: 2, Name: "Smart", Active: true, SeatCount: 4, SmartRoom: true},
	}}
	uc := newUseCase(rooms, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
		SmartRoom:    true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)
}

func TestExecute_SmartFalseKeepsSmartRooms(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Plain", Active: true, SeatCount: 4},
		{ID: 2, Name: "Smart", Active: true, SeatCount: 4, SmartRoom: true},
	}}
	uc := newUseCase(rooms, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 2)
}

func TestExecute_RoomStoreFailureDegradesToEmpty(t *testing.T) {
	rooms := &mockRoomRepo{listErr: errors.New("connection refused")}
	uc := newUseCase(rooms, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_BookingStoreFailureDegradesToEmpty(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Small", Active: true, SeatCount: 4},
	}}
	bookings := &mockBookingRepo{listErr: errors.New("connection refused")}
	uc := newUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_ExcludeSelfOnlyClashShortCircuit(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Mine", Active: true, SeatCount: 4},
		{ID: 2, Name: "Other", Active: true, SeatCount: 4},
	}}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, StartDate: at(10, 0), EndDate: at(12, 0)},
	}}
	uc := newUseCase(rooms, bookings)

	// Сдвиг внутри собственного слота: конфликт только с самим собой
	resp, err := uc.Execute(context.Background(), &Request{
		LocationName:     "HQ",
		Start:            at(10, 30),
		End:              at(11, 30),
		ExcludeBookingID: ptr.Ptr(int64(100)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(1), resp.Rooms[0].ID)
}

func TestExecute_ExcludeFullScanIgnoresOwnSlot(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Mine", Active: true, SeatCount: 4},
		{ID: 2, Name: "Busy", Active: true, SeatCount: 4},
	}}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, StartDate: at(10, 0), EndDate: at(11, 0)},
		{ID: 101, RoomID: 2, StartDate: at(13, 0), EndDate: at(15, 0)},
	}}
	uc := newUseCase(rooms, bookings)

	// Перенос на новое окно: своя комната свободна, чужая занята
	resp, err := uc.Execute(context.Background(), &Request{
		LocationName:     "HQ",
		Start:            at(13, 0),
		End:              at(14, 0),
		ExcludeBookingID: ptr.Ptr(int64(100)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(1), resp.Rooms[0].ID)
}

func TestExecute_ExcludeSmartFlagMatchedStrictly(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Plain", Active: true, SeatCount: 4},
		{ID: 2, Name: "Smart", Active: true, SeatCount: 4, SmartRoom: true},
	}}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 2, StartDate: at(9, 0), EndDate: at(9, 30)},
	}}
	uc := newUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName:     "HQ",
		Start:            at(10, 0),
		End:              at(11, 0),
		SmartRoom:        false,
		ExcludeBookingID: ptr.Ptr(int64(100)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(1), resp.Rooms[0].ID)
}

func TestExecute_ExcludeBookingNotFound(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Room", Active: true, SeatCount: 4},
	}}
	uc := newUseCase(rooms, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName:     "HQ",
		Start:            at(10, 0),
		End:              at(11, 0),
		ExcludeBookingID: ptr.Ptr(int64(404)),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_NoOverlappingRoomReturned(t *testing.T) {
	rooms := &mockRoomRepo{rooms: []*domain.Room{
		{ID: 1, Active: true, SeatCount: 4},
		{ID: 2, Active: true, SeatCount: 4},
		{ID: 3, Active: true, SeatCount: 4},
	}}
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, StartDate: at(9, 0), EndDate: at(10, 30)},
		{ID: 101, RoomID: 2, StartDate: at(10, 45), EndDate: at(11, 15)},
		{ID: 102, RoomID: 3, StartDate: at(11, 0), EndDate: at(12, 0)},
	}}
	uc := newUseCase(rooms, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		LocationName: "HQ",
		Start:        at(10, 0),
		End:          at(11, 0),
	})

	require.NoError(t, err)
	for _, room := range resp.Rooms {
		for _, b := range bookings.bookings {
			if b.RoomID == room.ID {
				assert.False(t, domain.BookingsOverlap(b, at(10, 0), at(11, 0)),
					"room %d returned despite overlapping booking %d", room.ID, b.ID)
			}
		}
	}
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, int64(3), resp.Rooms[0].ID)
}
