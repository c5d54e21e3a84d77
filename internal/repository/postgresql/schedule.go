package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/presensia/attendance-backend-go/internal/domain/schedule"
	"github.com/presensia/attendance-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

// GetAssignmentForDate implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetAssignmentForDate(ctx context.Context, userID string, date time.Time) (*schedule.ScheduleAssignment, error) {
	q := GetQuerier(ctx, r.db)

	// Assignments never overlap per user, so at most one row matches.
	query := `
		SELECT id, user_id, work_schedule_id, start_date, end_date
		FROM user_schedules
		WHERE user_id = $1
		  AND start_date <= $2::date
		  AND (end_date IS NULL OR end_date >= $2::date)
		LIMIT 1
	`

	var a schedule.ScheduleAssignment
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&a.ID, &a.UserID, &a.WorkScheduleID, &a.StartDate, &a.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule assignment: %w", err)
	}

	return &a, nil
}

// GetDayWorkTime implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetDayWorkTime(ctx context.Context, workScheduleID string, dayOfWeek int) (*schedule.WorkTime, error) {
	q := GetQuerier(ctx, r.db)

	// An absent day row and a null work_time_id both mean a day off.
	query := `
		SELECT wt.id, wt.name, wt.start_time, wt.end_time, wt.late_tolerance_minutes,
		       wt.created_at, wt.updated_at
		FROM work_schedule_days wsd
		JOIN work_times wt ON wt.id = wsd.work_time_id
		WHERE wsd.work_schedule_id = $1
		  AND wsd.day_of_week = $2
	`

	var wt schedule.WorkTime
	err := q.QueryRow(ctx, query, workScheduleID, dayOfWeek).Scan(
		&wt.ID, &wt.Name, &wt.StartTime, &wt.EndTime, &wt.LateToleranceMinutes,
		&wt.CreatedAt, &wt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day work time: %w", err)
	}

	return &wt, nil
}

// HasAnyAssignment implements schedule.ScheduleRepository.
func (r *scheduleRepository) HasAnyAssignment(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_schedules WHERE user_id = $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check schedule assignments: %w", err)
	}

	return exists, nil
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}
