package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
)

const msgMissingUserID = "отсутствует заголовок X-User-ID"

type ctxKey string

const userPIDKey ctxKey = "userPID"

// Auth требует заголовок X-User-ID с идентификатором пользователя
// в корпоративном каталоге и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pid := r.Header.Get("X-User-ID")
		if pid == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userPIDKey, pid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserPID возвращает идентификатор пользователя из контекста запроса
func GetUserPID(ctx context.Context) (string, bool) {
	pid, ok := ctx.Value(userPIDKey).(string)
	return pid, ok
}
