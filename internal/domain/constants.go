package domain

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

// Business validation constants
const (
	MaxRoomNameLength = 100
	MaxSubjectLength  = 255
	MinSeatCount      = 1
	MaxSeatCount      = 500
)
