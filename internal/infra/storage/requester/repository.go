package requester

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

var requesterColumns = []string{
	"id",
	"admin_id",
	"name",
	"department",
	"designation",
	"email",
	"password_hash",
	"active",
	"created_at",
	"updated_at",
}

// DBExecutor интерфейс выполнения запросов, переиспользуем dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
func (r *Repository) Create(ctx context.Context, requester *domain.Requester) (*domain.Requester, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("requesters").
		Columns(
			"admin_id",
			"name",
			"department",
			"designation",
			"email",
			"password_hash",
			"active",
		).
		Values(
			requester.AdminID,
			requester.Name,
			requester.Department,
			requester.Designation,
			requester.Email,
			requester.PasswordHash,
			requester.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&requester.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == sqlstateUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	requester.CreatedAt = createdAt.Time
	requester.UpdatedAt = updatedAt.Time

	return requester, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Requester, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requesterColumns...).
		From("requesters").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRequester(executor.QueryRowContext(ctx, query, args...))
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Requester, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requesterColumns...).
		From("requesters").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRequester(executor.QueryRowContext(ctx, query, args...))
}

func (r *Repository) scanRequester(row *sql.Row) (*domain.Requester, error) {
	var requester domain.Requester
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&requester.ID,
		&requester.AdminID,
		&requester.Name,
		&requester.Department,
		&requester.Designation,
		&requester.Email,
		&requester.PasswordHash,
		&requester.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequesterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanRequester - scan row: %v", ErrScanRow, err)
	}

	requester.CreatedAt = createdAt.Time
	requester.UpdatedAt = updatedAt.Time

	return &requester, nil
}
