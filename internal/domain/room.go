package domain

import "time"

// Room представляет переговорную комнату
// Имя комнаты уникально в пределах локации среди активных комнат
type Room struct {
	ID            int64
	LocationID    int64
	Name          string
	Active        bool
	SeatCount     int
	PhoneCount    int
	ComputerCount int
	SmartRoom     bool // Комната оборудована для smart-встреч

	CreatedAt time.Time
	UpdatedAt time.Time
}
