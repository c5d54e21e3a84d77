package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/presensia/attendance-backend-go/internal/domain/leave"
	"github.com/presensia/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// GetApprovedForDate implements leave.LeaveRepository.
func (r *leaveRepository) GetApprovedForDate(ctx context.Context, userID string, date time.Time) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type_id, lr.start_date, lr.end_date, lr.status,
		       lr.created_at, lr.updated_at,
		       lt.id, lt.name, lt.is_deducting_leave, lt.category, lt.created_at, lt.updated_at
		FROM leave_requests lr
		JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.user_id = $1
		  AND lr.status = $2
		  AND lr.start_date <= $3::date
		  AND lr.end_date >= $3::date
		LIMIT 1
	`

	var req leave.LeaveRequest
	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, userID, leave.LeaveRequestStatusApproved, date).Scan(
		&req.ID, &req.UserID, &req.LeaveTypeID, &req.StartDate, &req.EndDate, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
		&lt.ID, &lt.Name, &lt.IsDeductingLeave, &lt.Category, &lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get approved leave: %w", err)
	}

	req.LeaveType = &lt
	return &req, nil
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
