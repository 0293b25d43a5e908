package domain

import "time"

// Location представляет офисную локацию с переговорными комнатами
type Location struct {
	ID     int64
	Name   string
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
