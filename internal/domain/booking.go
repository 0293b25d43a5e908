package domain

import "time"

// Booking представляет бронирование переговорной комнаты
type Booking struct {
	ID         int64
	PID        string // Идентификатор владельца в корпоративном каталоге
	Owner      string // Отображаемое имя владельца
	Subject    string
	RoomID     int64
	LocationID int64

	StartDate      time.Time
	EndDate        time.Time
	IsSmartMeeting bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValid проверяет инвариант временного окна бронирования
func (b *Booking) IsValid() bool {
	return b.StartDate.Before(b.EndDate)
}

// IsOnDate проверяет, что бронирование начинается в указанную дату
// Сравниваются только даты, время суток игнорируется
func (b *Booking) IsOnDate(date time.Time) bool {
	y1, m1, d1 := b.StartDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
