package get_location_schedule

import "time"

// Request модель запроса дневного снапшота локации
type Request struct {
	LocationName string    // Имя локации
	Date         time.Time // Дата снапшота (без времени)
	SmartOnly    bool      // Вернуть только smart-комнаты
}

// Response модель ответа со списком комнат и их бронированиями на дату
type Response struct {
	LocationName string
	Date         time.Time
	Rooms        []RoomSchedule
}

// RoomSchedule комната с бронированиями на запрошенную дату
// Комната возвращается и без бронирований: снапшот отвечает на вопрос
// "что происходит в локации", а не "что свободно"
type RoomSchedule struct {
	ID            int64
	Name          string
	SeatCount     int
	PhoneCount    int
	ComputerCount int
	SmartRoom     bool
	Bookings      []BookingInfo
}

// BookingInfo данные бронирования в составе снапшота
type BookingInfo struct {
	ID             int64
	Owner          string
	Subject        string
	StartDate      time.Time
	EndDate        time.Time
	IsSmartMeeting bool
}
