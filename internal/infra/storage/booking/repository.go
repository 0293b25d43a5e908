package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"pid",
	"owner",
	"subject",
	"room_id",
	"location_id",
	"start_date",
	"end_date",
	"is_smart_meeting",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"pid",
			"owner",
			"subject",
			"room_id",
			"location_id",
			"start_date",
			"end_date",
			"is_smart_meeting",
		).
		Values(
			b.PID,
			b.Owner,
			b.Subject,
			b.RoomID,
			b.LocationID,
			b.StartDate,
			b.EndDate,
			b.IsSmartMeeting,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.PID,
		&b.Owner,
		&b.Subject,
		&b.RoomID,
		&b.LocationID,
		&b.StartDate,
		&b.EndDate,
		&b.IsSmartMeeting,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// GetByRoomID получает все бронирования комнаты
// Используется резолвером конфликтов для проверки пересечений
func (r *Repository) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByRoomID")
}

// GetByRoomIDs получает все бронирования для набора комнат
// Используется движком доступности для проверки пересечений при полном сканировании
func (r *Repository) GetByRoomIDs(ctx context.Context, roomIDs []int64) ([]*domain.Booking, error) {
	if len(roomIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomIDs}).
		OrderBy("room_id ASC, start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByRoomIDs")
}

// GetByDateAndRoom получает бронирования комнаты, начинающиеся в указанную дату
// Сравниваются только даты, время суток игнорируется
// Используется каскадной деактивацией комнаты
// Если вызывается в транзакции, строки блокируются FOR UPDATE
func (r *Repository) GetByDateAndRoom(ctx context.Context, date time.Time, roomID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Expr("start_date::date = ?::date", date)).
		OrderBy("start_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByDateAndRoom")
}

// GetByDateAndRooms получает бронирования набора комнат, начинающиеся в указанную дату
// Используется дневным снапшотом локации для аннотирования комнат
func (r *Repository) GetByDateAndRooms(ctx context.Context, date time.Time, roomIDs []int64) ([]*domain.Booking, error) {
	if len(roomIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomIDs}).
		Where(squirrel.Expr("start_date::date = ?::date", date)).
		OrderBy("room_id ASC, start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByDateAndRooms")
}

// DeleteBatch удаляет пакет бронирований одним запросом
// Каскадная деактивация удаляет весь пакет за один вызов, не по одному
func (r *Repository) DeleteBatch(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]int64, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBatch - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteBatch - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings сканирует строки результата в список бронирований
func (r *Repository) scanBookings(rows *sql.Rows, method string) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.PID,
			&b.Owner,
			&b.Subject,
			&b.RoomID,
			&b.LocationID,
			&b.StartDate,
			&b.EndDate,
			&b.IsSmartMeeting,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}
