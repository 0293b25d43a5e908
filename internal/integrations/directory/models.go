package directory

// User модель пользователя из корпоративного каталога
// Запрашивается по требованию, локально не сохраняется
type User struct {
	PID        string `json:"pid"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
