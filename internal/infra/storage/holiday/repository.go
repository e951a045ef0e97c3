package holiday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HolidayService/internal/domain"
	"github.com/m04kA/SMC-HolidayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HolidayService/pkg/psqlbuilder"
)

const (
	tableHolidays = "holidays"

	// scheduleLockKey ключ advisory-блокировки расписания
	// Правило пересечения глобальное, поэтому блокировка одна на всех сотрудников
	scheduleLockKey int64 = 0x484f4c49444159 // "HOLIDAY"

	pqExclusionViolation pq.ErrorCode = "23P01"
)

var holidayColumns = []string{
	"id",
	"label",
	"employee_id",
	"start_of_holiday",
	"end_of_holiday",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отпусками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отпусков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockSchedule берет транзакционную advisory-блокировку расписания
// Блокировка снимается при фиксации или откате транзакции.
// Все пишущие use case берут её первым действием, поэтому проверка правил
// и запись конкурентных запросов выполняются строго по очереди
func (r *Repository) LockSchedule(ctx context.Context) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", scheduleLockKey); err != nil {
		return fmt.Errorf("%w: LockSchedule - acquire advisory lock: %v", ErrExecQuery, err)
	}
	return nil
}

// Create сохраняет новый отпуск
// Идентификатор и временные метки назначает БД
func (r *Repository) Create(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableHolidays).
		Columns(
			"label",
			"employee_id",
			"start_of_holiday",
			"end_of_holiday",
			"status",
		).
		Values(
			holiday.Label,
			holiday.EmployeeID,
			holiday.Start,
			holiday.End,
			holiday.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *holiday
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return nil, fmt.Errorf("%w: Create - insert: %v", ErrOverlapConstraint, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает отпуск по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(holidayColumns...).
		From(tableHolidays).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	holiday, err := scanHoliday(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan holiday: %v", ErrScanRow, err)
	}

	return holiday, nil
}

// GetAll получает все отпуска, отсортированные по началу
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Holiday, error) {
	query, args, err := psqlbuilder.Select(holidayColumns...).
		From(tableHolidays).
		OrderBy("start_of_holiday ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryHolidays(ctx, "GetAll", query, args)
}

// GetByEmployeeID получает отпуска сотрудника, отсортированные по началу
func (r *Repository) GetByEmployeeID(ctx context.Context, employeeID string) ([]*domain.Holiday, error) {
	query, args, err := psqlbuilder.Select(holidayColumns...).
		From(tableHolidays).
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("start_of_holiday ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryHolidays(ctx, "GetByEmployeeID", query, args)
}

// FindOverlapping получает отпуска всех сотрудников, пересекающиеся с [start, end)
func (r *Repository) FindOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Holiday, error) {
	query, args, err := overlappingQuery(start, end).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryHolidays(ctx, "FindOverlapping", query, args)
}

// Update полностью заменяет изменяемые поля отпуска
// Идентификатор и created_at не меняются
func (r *Repository) Update(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableHolidays).
		Set("label", holiday.Label).
		Set("employee_id", holiday.EmployeeID).
		Set("start_of_holiday", holiday.Start).
		Set("end_of_holiday", holiday.End).
		Set("status", holiday.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": holiday.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated := *holiday
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		if isExclusionViolation(err) {
			return nil, fmt.Errorf("%w: Update - update: %v", ErrOverlapConstraint, err)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return &updated, nil
}

// Delete удаляет отпуск по ID
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableHolidays).
		Where(squirrel.Eq{"id": id}).
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
		return ErrHolidayNotFound
	}

	return nil
}

func overlappingQuery(start, end time.Time) squirrel.SelectBuilder {
	return psqlbuilder.Select(holidayColumns...).
		From(tableHolidays).
		Where(squirrel.Lt{"start_of_holiday": end}).
		Where(squirrel.Gt{"end_of_holiday": start}).
		OrderBy("start_of_holiday ASC", "id ASC")
}

func (r *Repository) queryHolidays(ctx context.Context, op, query string, args []interface{}) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan holiday: %v", ErrScanRow, op, err)
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return holidays, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHoliday(row rowScanner) (*domain.Holiday, error) {
	var (
		holiday domain.Holiday
		status  string
	)

	err := row.Scan(
		&holiday.ID,
		&holiday.Label,
		&holiday.EmployeeID,
		&holiday.Start,
		&holiday.End,
		&status,
		&holiday.CreatedAt,
		&holiday.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	holiday.Status = domain.HolidayStatus(status)
	return &holiday, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqExclusionViolation
}
