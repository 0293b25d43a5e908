package edit_room

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

// EditRoomRequest HTTP request model
type EditRoomRequest struct {
	Name          string `json:"name"`
	SeatCount     int    `json:"seatCount"`
	PhoneCount    int    `json:"phoneCount"`
	ComputerCount int    `json:"computerCount"`
	SmartRoom     bool   `json:"smartRoom"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *EditRoomRequest) ToServiceRequest(roomID int64) *models.EditRoomRequest {
	return &models.EditRoomRequest{
		RoomID:        roomID,
		Name:          r.Name,
		SeatCount:     r.SeatCount,
		PhoneCount:    r.PhoneCount,
		ComputerCount: r.ComputerCount,
		SmartRoom:     r.SmartRoom,
	}
}
