package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type mockBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestDoesMeetingClash_NoBookings(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	candidate := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(10, 0), EndDate: at(11, 0)}
	clash, clashes, err := svc.DoesMeetingClash(context.Background(), candidate)

	require.NoError(t, err)
	assert.False(t, clash)
	assert.Empty(t, clashes)
}

func TestDoesMeetingClash_OverlappingBooking(t *testing.T) {
	existing := &domain.Booking{ID: 1, RoomID: 1, StartDate: at(10, 30), EndDate: at(11, 30)}
	svc := NewService(&mockBookingRepo{bookings: []*domain.Booking{existing}}, nopLogger{})

	candidate := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(10, 0), EndDate: at(11, 0)}
	clash, clashes, err := svc.DoesMeetingClash(context.Background(), candidate)

	require.NoError(t, err)
	assert.True(t, clash)
	require.Len(t, clashes, 1)
	assert.Equal(t, int64(1), clashes[0].ID)
}

// Бронирования "впритык" не конфликтуют
func TestDoesMeetingClash_AdjacentBookings(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 1, RoomID: 1, StartDate: at(9, 0), EndDate: at(10, 0)},
		{ID: 2, RoomID: 1, StartDate: at(11, 0), EndDate: at(12, 0)},
	}
	svc := NewService(&mockBookingRepo{bookings: existing}, nopLogger{})

	candidate := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(10, 0), EndDate: at(11, 0)}
	clash, clashes, err := svc.DoesMeetingClash(context.Background(), candidate)

	require.NoError(t, err)
	assert.False(t, clash)
	assert.Empty(t, clashes)
}

// Собственная сохранённая строка кандидата не исключается из результата:
// на этом построен режим редактирования в движке доступности
func TestDoesMeetingClash_SelfRowIsReported(t *testing.T) {
	self := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(10, 0), EndDate: at(11, 0)}
	svc := NewService(&mockBookingRepo{bookings: []*domain.Booking{self}}, nopLogger{})

	candidate := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(10, 30), EndDate: at(11, 30)}
	clash, clashes, err := svc.DoesMeetingClash(context.Background(), candidate)

	require.NoError(t, err)
	assert.True(t, clash)
	assert.True(t, IsSelfOnlyClash(candidate, clashes))
}

func TestDoesMeetingClash_InvalidWindow(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, nopLogger{})

	candidate := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(11, 0), EndDate: at(10, 0)}
	_, _, err := svc.DoesMeetingClash(context.Background(), candidate)

	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestDoesMeetingClash_RepositoryError(t *testing.T) {
	svc := NewService(&mockBookingRepo{err: errors.New("connection refused")}, nopLogger{})

	candidate := &domain.Booking{ID: 10, RoomID: 1, StartDate: at(10, 0), EndDate: at(11, 0)}
	_, _, err := svc.DoesMeetingClash(context.Background(), candidate)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestIsSelfOnlyClash(t *testing.T) {
	candidate := &domain.Booking{ID: 10}

	assert.True(t, IsSelfOnlyClash(candidate, []*domain.Booking{{ID: 10}}))
	assert.False(t, IsSelfOnlyClash(candidate, []*domain.Booking{{ID: 11}}))
	assert.False(t, IsSelfOnlyClash(candidate, []*domain.Booking{{ID: 10}, {ID: 11}}))
	assert.False(t, IsSelfOnlyClash(candidate, nil))
}
