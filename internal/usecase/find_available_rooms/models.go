package find_available_rooms

import "time"

// Request модель запроса поиска свободных комнат
type Request struct {
	LocationName string    // Имя локации
	Start        time.Time // Начало окна [start, end)
	End          time.Time // Конец окна
	MinCapacity  int       // Минимальная вместимость
	SmartRoom    bool      // Фильтр smart-комнат

	// ExcludeBookingID идентификатор редактируемого бронирования:
	// его собственный слот не блокирует поиск
	ExcludeBookingID *int64
}

// Response модель ответа со списком подходящих комнат
type Response struct {
	LocationName string
	Start        time.Time
	End          time.Time
	Rooms        []AvailableRoom
}

// AvailableRoom комната, свободная в запрошенном окне
type AvailableRoom struct {
	ID            int64
	Name          string
	SeatCount     int
	PhoneCount    int
	ComputerCount int
	SmartRoom     bool
}
