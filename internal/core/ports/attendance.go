package ports

import "github.com/crimsoninnovative/console/internal/core/domain"

// AttendanceRecordInput is a record without an id; the store assigns one.
type AttendanceRecordInput struct {
	UserID      string
	Date        string
	CheckIn     *string
	CheckOut    *string
	Status      domain.AttendanceStatus
	HoursWorked string
}

// EnrollmentInput is an employee without id or role. EmployeeID, Status and
// JoinedOn are defaulted by the store when empty.
type EnrollmentInput struct {
	FirstName   string
	LastName    string
	Email       string
	Department  string
	Designation string
	EmployeeID  string
	Status      domain.EmployeeStatus
	JoinedOn    string
}

// AttendanceStore owns the attendance console collections.
type AttendanceStore interface {
	Records() []domain.AttendanceRecord
	// RecordsFor filters by owner (empty userID = everyone) and by a
	// case-insensitive substring of the display date.
	RecordsFor(userID, dateQuery string) []domain.AttendanceRecord
	Summary(userID string) domain.AttendanceSummary
	Cameras() []domain.CameraConfig
	EnrolledUsers() []domain.Employee

	AddAttendanceRecord(in AttendanceRecordInput) domain.AttendanceRecord
	// UpdateCamera reports false, changing nothing, when no camera has id.
	UpdateCamera(id string, patch domain.CameraPatch) bool
	EnrollUser(in EnrollmentInput) domain.Employee
}
