package check_booking_clash

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// CheckClashRequest HTTP request model
type CheckClashRequest struct {
	RoomID    int64  `json:"roomId"`
	StartDate string `json:"startDate"` // "2025-10-15 10:00"
	EndDate   string `json:"endDate"`   // "2025-10-15 11:00"

	// BookingID идентификатор редактируемого бронирования:
	// конфликт только с собственным слотом не считается занятостью
	BookingID *int64 `json:"bookingId,omitempty"`
}

// CheckClashResponse HTTP response model
type CheckClashResponse struct {
	Clash    bool        `json:"clash"`
	SelfOnly bool        `json:"selfOnly"`
	Clashes  []ClashInfo `json:"clashes"`
}

// ClashInfo пересекающееся бронирование
type ClashInfo struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner"`
	Subject   string `json:"subject"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ToCandidate конвертирует HTTP запрос в кандидата для проверки
func (r *CheckClashRequest) ToCandidate() (*domain.Booking, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	candidate := &domain.Booking{
		RoomID:    r.RoomID,
		StartDate: start,
		EndDate:   end,
	}
	if r.BookingID != nil {
		candidate.ID = *r.BookingID
	}

	return candidate, nil
}

// FromClashes конвертирует результат проверки в HTTP response
func FromClashes(clash, selfOnly bool, clashes []*domain.Booking) *CheckClashResponse {
	out := &CheckClashResponse{
		Clash:    clash,
		SelfOnly: selfOnly,
		Clashes:  make([]ClashInfo, 0, len(clashes)),
	}

	for _, b := range clashes {
		out.Clashes = append(out.Clashes, ClashInfo{
			ID:        b.ID,
			Owner:     b.Owner,
			Subject:   b.Subject,
			StartDate: b.StartDate.Format(domain.DateTimeFormat),
			EndDate:   b.EndDate.Format(domain.DateTimeFormat),
		})
	}

	return out
}
