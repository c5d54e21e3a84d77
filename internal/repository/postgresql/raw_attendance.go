package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
	"github.com/presensia/attendance-backend-go/internal/pkg/database"
)

type rawAttendanceRepository struct {
	db *database.DB
}

// WithSessionLock implements attendance.RawAttendanceRepository.
// Opens a transaction and takes a pg advisory lock keyed on
// (user, session date); the lock is released at transaction end. The
// unique index on raw_attendances (user_id, date) backstops it.
func (r *rawAttendanceRepository) WithSessionLock(ctx context.Context, userID string, date time.Time, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		key := fmt.Sprintf("raw_attendance:%s:%s", userID, date.Format("2006-01-02"))
		if _, err := q.Exec(txCtx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
			return fmt.Errorf("failed to acquire session lock: %w", err)
		}

		return fn(txCtx)
	})
}

// GetByUserAndDate implements attendance.RawAttendanceRepository.
func (r *rawAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.RawAttendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, clock_in, clock_out, created_at, updated_at
		FROM raw_attendances
		WHERE user_id = $1
		  AND date = $2::date
	`

	var raw attendance.RawAttendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&raw.ID, &raw.UserID, &raw.Date, &raw.ClockIn, &raw.ClockOut,
		&raw.CreatedAt, &raw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get raw attendance: %w", err)
	}

	return &raw, nil
}

// Create implements attendance.RawAttendanceRepository.
func (r *rawAttendanceRepository) Create(ctx context.Context, raw attendance.RawAttendance) (attendance.RawAttendance, error) {
	q := GetQuerier(ctx, r.db)

	if raw.ID == "" {
		raw.ID = uuid.NewString()
	}

	query := `
		INSERT INTO raw_attendances (id, user_id, date, clock_in)
		VALUES ($1, $2, $3::date, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, raw.ID, raw.UserID, raw.Date, raw.ClockIn).
		Scan(&raw.CreatedAt, &raw.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.RawAttendance{}, attendance.ErrRawAttendanceExists
		}
		return attendance.RawAttendance{}, fmt.Errorf("failed to create raw attendance: %w", err)
	}

	return raw, nil
}

// SetClockOut implements attendance.RawAttendanceRepository.
func (r *rawAttendanceRepository) SetClockOut(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE raw_attendances
		SET clock_out = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, clockOut, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRawAttendanceNotFound
		}
		return fmt.Errorf("failed to set clock out: %w", err)
	}

	return nil
}

func NewRawAttendanceRepository(db *database.DB) attendance.RawAttendanceRepository {
	return &rawAttendanceRepository{db: db}
}
