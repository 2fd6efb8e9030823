package api

import (
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

func portsRecord(userID string) ports.AttendanceRecordInput {
	return ports.AttendanceRecordInput{
		UserID:      userID,
		Date:        "Wed, 24 Dec 2025",
		Status:      domain.AttendancePresent,
		HoursWorked: "0h 0m",
	}
}
