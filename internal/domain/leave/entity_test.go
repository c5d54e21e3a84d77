package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveType_ResolveCategory(t *testing.T) {
	sick := CategorySick

	tests := []struct {
		name string
		lt   LeaveType
		want LeaveCategory
	}{
		{"explicit category wins", LeaveType{Name: "Annual Leave", IsDeductingLeave: true, Category: &sick}, CategorySick},
		{"deducting falls back to leave", LeaveType{Name: "Annual Leave", IsDeductingLeave: true}, CategoryLeave},
		{"sick by english name", LeaveType{Name: "Sick Leave"}, CategorySick},
		{"sick by indonesian name", LeaveType{Name: "Izin Sakit"}, CategorySick},
		{"everything else is permit", LeaveType{Name: "Marriage Permit"}, CategoryPermit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lt.ResolveCategory())
		})
	}
}
