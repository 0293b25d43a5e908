package get_location_schedule

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	getLocationSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_location_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Location string         `json:"location"`
	Date     string         `json:"date"`
	Rooms    []RoomSchedule `json:"rooms"`
}

// RoomSchedule комната с бронированиями на дату
type RoomSchedule struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	SeatCount     int           `json:"seatCount"`
	PhoneCount    int           `json:"phoneCount"`
	ComputerCount int           `json:"computerCount"`
	SmartRoom     bool          `json:"smartRoom"`
	Bookings      []BookingInfo `json:"bookings"`
}

// BookingInfo бронирование в составе снапшота
type BookingInfo struct {
	ID             int64  `json:"id"`
	Owner          string `json:"owner"`
	Subject        string `json:"subject"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	IsSmartMeeting bool   `json:"isSmartMeeting"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getLocationSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Location: resp.LocationName,
		Date:     resp.Date.Format(domain.DateFormat),
		Rooms:    make([]RoomSchedule, 0, len(resp.Rooms)),
	}

	for _, room := range resp.Rooms {
		rs := RoomSchedule{
			ID:            room.ID,
			Name:          room.Name,
			SeatCount:     room.SeatCount,
			PhoneCount:    room.PhoneCount,
			ComputerCount: room.ComputerCount,
			SmartRoom:     room.SmartRoom,
			Bookings:      make([]BookingInfo, 0, len(room.Bookings)),
		}
		for _, b := range room.Bookings {
			rs.Bookings = append(rs.Bookings, BookingInfo{
				ID:             b.ID,
				Owner:          b.Owner,
				Subject:        b.Subject,
				StartDate:      b.StartDate.Format(domain.DateTimeFormat),
				EndDate:        b.EndDate.Format(domain.DateTimeFormat),
				IsSmartMeeting: b.IsSmartMeeting,
			})
		}
		out.Rooms = append(out.Rooms, rs)
	}

	return out
}
