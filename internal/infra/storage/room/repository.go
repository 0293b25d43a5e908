package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// roomColumns колонки таблицы rooms в порядке сканирования
var roomColumns = []string{
	"id",
	"location_id",
	"name",
	"active",
	"seat_count",
	"phone_count",
	"computer_count",
	"smart_room",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с переговорными комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByLocationAndName ищет комнату по локации и имени
// Используется проверкой уникальности имени при редактировании комнаты
func (r *Repository) GetByLocationAndName(ctx context.Context, locationID int64, name string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"location_id": locationID, "name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationAndName - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...), "GetByLocationAndName")
}

// GetActiveByLocationName получает все активные комнаты локации по её имени
// Сортировка по вместимости (ASC); при равенстве — по порядку создания,
// чтобы результат был стабильным
func (r *Repository) GetActiveByLocationName(ctx context.Context, locationName string) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.location_id",
		"r.name",
		"r.active",
		"r.seat_count",
		"r.phone_count",
		"r.computer_count",
		"r.smart_room",
		"r.created_at",
		"r.updated_at",
	).
		From("rooms r").
		Join("locations l ON l.id = r.location_id").
		Where(squirrel.Eq{"l.name": locationName, "r.active": true}).
		OrderBy("r.seat_count ASC, r.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByLocationName - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByLocationName - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows, "GetActiveByLocationName")
}

// GetByLocationID получает все комнаты локации
// Используется каскадной деактивацией локации
func (r *Repository) GetByLocationID(ctx context.Context, locationID int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows, "GetByLocationID")
}

// Update сохраняет изменённую комнату
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("active", room.Active).
		Set("seat_count", room.SeatCount).
		Set("phone_count", room.PhoneCount).
		Set("computer_count", room.ComputerCount).
		Set("smart_room", room.SmartRoom).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// scanRoom сканирует одну строку результата в комнату
func (r *Repository) scanRoom(row *sql.Row, method string) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.LocationID,
		&room.Name,
		&room.Active,
		&room.SeatCount,
		&room.PhoneCount,
		&room.ComputerCount,
		&room.SmartRoom,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, method, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// scanRooms сканирует строки результата в список комнат
func (r *Repository) scanRooms(rows *sql.Rows, method string) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.LocationID,
			&room.Name,
			&room.Active,
			&room.SeatCount,
			&room.PhoneCount,
			&room.ComputerCount,
			&room.SmartRoom,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, method, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return rooms, nil
}
