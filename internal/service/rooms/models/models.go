package models

import "github.com/m04kA/SMC-MeetingRoomService/internal/domain"

// Request модели

// EditRoomRequest запрос на редактирование комнаты
type EditRoomRequest struct {
	RoomID        int64  `json:"roomId"`
	Name          string `json:"name"`
	SeatCount     int    `json:"seatCount"`
	PhoneCount    int    `json:"phoneCount"`
	ComputerCount int    `json:"computerCount"`
	SmartRoom     bool   `json:"smartRoom"`
}

// EmailSettings настройки уведомлений каскадной деактивации
// FromEmail используется как адрес отправителя для всех писем каскада
type EmailSettings struct {
	FromEmail string
	Subject   string
	Template  string
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID            int64  `json:"id"`
	LocationID    int64  `json:"locationId"`
	Name          string `json:"name"`
	Active        bool   `json:"active"`
	SeatCount     int    `json:"seatCount"`
	PhoneCount    int    `json:"phoneCount"`
	ComputerCount int    `json:"computerCount"`
	SmartRoom     bool   `json:"smartRoom"`
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:            room.ID,
		LocationID:    room.LocationID,
		Name:          room.Name,
		Active:        room.Active,
		SeatCount:     room.SeatCount,
		PhoneCount:    room.PhoneCount,
		ComputerCount: room.ComputerCount,
		SmartRoom:     room.SmartRoom,
	}
}
