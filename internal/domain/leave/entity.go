package leave

import (
	"strings"
	"time"
)

// LeaveCategory is the attendance-facing classification of a leave
// type: quota-deducting leave, sick leave, or a general permit.
type LeaveCategory string

const (
	CategoryLeave  LeaveCategory = "Leave"
	CategorySick   LeaveCategory = "Sick"
	CategoryPermit LeaveCategory = "Permit"
)

// LeaveType entity. Category, when set, decides the classification
// explicitly. When unset the classification falls back to the legacy
// derivation: deducting types count as Leave, types whose name mentions
// sickness count as Sick, everything else is a Permit.
type LeaveType struct {
	ID               string
	Name             string
	IsDeductingLeave bool
	Category         *LeaveCategory
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ResolveCategory returns the explicit category when present, otherwise
// derives it from IsDeductingLeave and the type name.
func (t LeaveType) ResolveCategory() LeaveCategory {
	if t.Category != nil {
		return *t.Category
	}
	if t.IsDeductingLeave {
		return CategoryLeave
	}
	name := strings.ToLower(t.Name)
	if strings.Contains(name, "sick") || strings.Contains(name, "sakit") {
		return CategorySick
	}
	return CategoryPermit
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// LeaveRequest entity. The date range is inclusive on both ends; only
// Approved requests affect attendance.
type LeaveRequest struct {
	ID          string
	UserID      string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Status      LeaveRequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded relationship
	LeaveType *LeaveType
}
