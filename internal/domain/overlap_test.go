package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		existingStart  time.Time
		existingEnd    time.Time
		candidateStart time.Time
		candidateEnd   time.Time
		want           bool
	}{
		{
			name:          "полное пересечение",
			existingStart: ts(11, 0), existingEnd: ts(12, 0),
			candidateStart: ts(11, 0), candidateEnd: ts(12, 0),
			want: true,
		},
		{
			name:          "частичное пересечение в конце",
			existingStart: ts(11, 0), existingEnd: ts(12, 0),
			candidateStart: ts(11, 30), candidateEnd: ts(12, 30),
			want: true,
		},
		{
			name:          "частичное пересечение в начале",
			existingStart: ts(11, 0), existingEnd: ts(12, 0),
			candidateStart: ts(10, 30), candidateEnd: ts(11, 30),
			want: true,
		},
		{
			name:          "кандидат внутри существующего",
			existingStart: ts(11, 0), existingEnd: ts(12, 0),
			candidateStart: ts(11, 15), candidateEnd: ts(11, 45),
			want: true,
		},
		{
			name:          "существующее внутри кандидата",
			existingStart: ts(11, 15), existingEnd: ts(11, 45),
			candidateStart: ts(11, 0), candidateEnd: ts(12, 0),
			want: true,
		},
		{
			name:          "кандидат начинается ровно в конце существующего",
			existingStart: ts(11, 0), existingEnd: ts(12, 0),
			candidateStart: ts(12, 0), candidateEnd: ts(13, 0),
			want: false,
		},
		{
			name:          "кандидат заканчивается ровно в начале существующего",
			existingStart: ts(11, 0), existingEnd: ts(12, 0),
			candidateStart: ts(10, 0), candidateEnd: ts(11, 0),
			want: false,
		},
		{
			name:          "интервалы не пересекаются",
			existingStart: ts(9, 0), existingEnd: ts(10, 0),
			candidateStart: ts(14, 0), candidateEnd: ts(15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.existingStart, tt.existingEnd, tt.candidateStart, tt.candidateEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Пересечение симметрично: overlaps(A, B) == overlaps(B, A)
func TestOverlaps_Symmetry(t *testing.T) {
	windows := []struct {
		start, end time.Time
	}{
		{ts(9, 0), ts(10, 0)},
		{ts(9, 30), ts(10, 30)},
		{ts(10, 0), ts(11, 0)},
		{ts(9, 0), ts(12, 0)},
	}

	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t,
				Overlaps(a.start, a.end, b.start, b.end),
				Overlaps(b.start, b.end, a.start, a.end),
				"overlaps должно быть симметрично для %v-%v и %v-%v",
				a.start, a.end, b.start, b.end,
			)
		}
	}
}

func TestBookingsOverlap(t *testing.T) {
	booking := &Booking{StartDate: ts(11, 0), EndDate: ts(12, 0)}

	assert.True(t, BookingsOverlap(booking, ts(11, 30), ts(12, 30)))
	assert.False(t, BookingsOverlap(booking, ts(12, 0), ts(13, 0)))
}

func TestBookingIsOnDate(t *testing.T) {
	booking := &Booking{
		StartDate: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	assert.True(t, booking.IsOnDate(time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, booking.IsOnDate(time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)))
}
