package find_available_rooms

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	findAvailableRooms "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/find_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	Location string          `json:"location"`
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Rooms    []AvailableRoom `json:"rooms"`
}

// AvailableRoom комната, свободная в запрошенном окне
type AvailableRoom struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SeatCount     int    `json:"seatCount"`
	PhoneCount    int    `json:"phoneCount"`
	ComputerCount int    `json:"computerCount"`
	SmartRoom     bool   `json:"smartRoom"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableRooms.Response) *AvailableRoomsResponse {
	out := &AvailableRoomsResponse{
		Location: resp.LocationName,
		Start:    resp.Start.Format(domain.DateTimeFormat),
		End:      resp.End.Format(domain.DateTimeFormat),
		Rooms:    make([]AvailableRoom, 0, len(resp.Rooms)),
	}

	for _, room := range resp.Rooms {
		out.Rooms = append(out.Rooms, AvailableRoom{
			ID:            room.ID,
			Name:          room.Name,
			SeatCount:     room.SeatCount,
			PhoneCount:    room.PhoneCount,
			ComputerCount: room.ComputerCount,
			SmartRoom:     room.SmartRoom,
		})
	}

	return out
}
