package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/X-Sarthak/CSIR-Project-sub000/internal/domain"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/dbmetrics"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/psqlbuilder"
)

// unique_violation
const sqlstateUniqueViolation = "23505"

// Repository репозиторий для работы с переговорными
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переговорных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую переговорную
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"name",
			"approver_name",
			"login",
			"password_hash",
			"active",
			"weekdays",
			"daily_start",
			"daily_end",
		).
		Values(
			room.Name,
			room.ApproverName,
			room.Login,
			room.PasswordHash,
			room.Active,
			pq.Array(weekdayStrings(room.Window.Weekdays)),
			room.Window.DailyStart,
			room.Window.DailyEnd,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == sqlstateUniqueViolation {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает переговорную по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"approver_name",
		"login",
		"password_hash",
		"active",
		"weekdays",
		"daily_start",
		"daily_end",
		"join_link",
		"created_at",
		"updated_at",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var weekdays pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.ApproverName,
		&room.Login,
		&room.PasswordHash,
		&room.Active,
		&weekdays,
		&room.Window.DailyStart,
		&room.Window.DailyEnd,
		&room.JoinLink,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	window, err := domain.NormalizeWeekdaySet(weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - normalize weekdays: %v", ErrScanRow, err)
	}
	room.Window.Weekdays = window

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// ReplaceWindow заменяет окно доступности переговорной целиком.
// Должен вызываться в одной транзакции с PurgeByRoom репозитория
// бронирований - промежуточного состояния со старыми бронированиями
// под новым окном существовать не должно.
func (r *Repository) ReplaceWindow(ctx context.Context, roomID int64, window domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("weekdays", pq.Array(weekdayStrings(window.Weekdays))).
		Set("daily_start", window.DailyStart).
		Set("daily_end", window.DailyEnd).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWindow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceWindow - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWindow - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// UpdateJoinLink сохраняет общую ссылку подключения на переговорной.
// Легаси-поведение: ссылка, переданная при создании бронирования,
// привязывается к переговорной, а не к конкретному бронированию.
func (r *Repository) UpdateJoinLink(ctx context.Context, roomID int64, link string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("join_link", link).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateJoinLink - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateJoinLink - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateJoinLink - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// SetActive включает или выключает переговорную
func (r *Repository) SetActive(ctx context.Context, roomID int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete удаляет переговорную. Каскад по внешнему ключу удаляет
// все её бронирования.
func (r *Repository) Delete(ctx context.Context, roomID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": roomID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

func weekdayStrings(days []domain.Weekday) []string {
	result := make([]string, len(days))
	for i, d := range days {
		result[i] = string(d)
	}
	return result
}
