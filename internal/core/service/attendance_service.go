package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

const joinedOnLayout = "January 2, 2006"

// AttendanceService is the attendance console store: attendance records
// (newest first), the two cameras, and employees enrolled at runtime.
type AttendanceService struct {
	mu       sync.RWMutex
	records  []domain.AttendanceRecord
	cameras  []domain.CameraConfig
	enrolled []domain.Employee

	ids   IDGenerator
	now   func() time.Time
	audit ports.AuditRecorder
	log   zerolog.Logger
}

// NewAttendanceService returns a store holding the seed records and cameras.
func NewAttendanceService(ids IDGenerator, audit ports.AuditRecorder, log zerolog.Logger) *AttendanceService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if audit == nil {
		audit = NopAuditRecorder{}
	}
	return &AttendanceService{
		records:  seedAttendanceRecords(),
		cameras:  seedCameras(),
		enrolled: []domain.Employee{},
		ids:      ids,
		now:      time.Now,
		audit:    audit,
		log:      log,
	}
}

func (s *AttendanceService) Records() []domain.AttendanceRecord {
	return s.RecordsFor("", "")
}

func (s *AttendanceService) RecordsFor(userID, dateQuery string) []domain.AttendanceRecord {
	q := strings.ToLower(strings.TrimSpace(dateQuery))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0, len(s.records))
	for _, r := range s.records {
		if userID != "" && r.UserID != userID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.Date), q) {
			continue
		}
		out = append(out, cloneRecord(r))
	}
	return out
}

func (s *AttendanceService) Summary(userID string) domain.AttendanceSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum domain.AttendanceSummary
	for _, r := range s.records {
		if userID != "" && r.UserID != userID {
			continue
		}
		sum.Add(r)
	}
	return sum
}

func (s *AttendanceService) Cameras() []domain.CameraConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CameraConfig, len(s.cameras))
	copy(out, s.cameras)
	return out
}

func (s *AttendanceService) EnrolledUsers() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Employee, len(s.enrolled))
	copy(out, s.enrolled)
	return out
}

// AddAttendanceRecord assigns a fresh id and prepends the record.
func (s *AttendanceService) AddAttendanceRecord(in ports.AttendanceRecordInput) domain.AttendanceRecord {
	rec := domain.AttendanceRecord{
		ID:          s.ids.NewID(),
		UserID:      in.UserID,
		Date:        in.Date,
		CheckIn:     cloneString(in.CheckIn),
		CheckOut:    cloneString(in.CheckOut),
		Status:      in.Status,
		HoursWorked: in.HoursWorked,
	}

	s.mu.Lock()
	s.records = append([]domain.AttendanceRecord{rec}, s.records...)
	s.mu.Unlock()

	s.log.Info().Str("record_id", rec.ID).Str("user_id", rec.UserID).Str("status", string(rec.Status)).Msg("attendance record added")
	s.record("attendance.record.add", rec.ID, true)
	return cloneRecord(rec)
}

// UpdateCamera merges patch into the camera with id. An unknown id is a
// documented no-op and reports false.
func (s *AttendanceService) UpdateCamera(id string, patch domain.CameraPatch) bool {
	s.mu.Lock()
	applied := false
	for i := range s.cameras {
		if s.cameras[i].ID == id {
			patch.ApplyTo(&s.cameras[i])
			applied = true
			break
		}
	}
	s.mu.Unlock()

	if applied {
		s.log.Info().Str("camera_id", id).Msg("camera updated")
	} else {
		s.log.Debug().Str("camera_id", id).Msg("camera update ignored: unknown id")
	}
	s.record("attendance.camera.update", id, applied)
	return applied
}

// EnrollUser assigns a fresh id and the user role, then appends the employee.
func (s *AttendanceService) EnrollUser(in ports.EnrollmentInput) domain.Employee {
	now := s.now()
	emp := domain.Employee{
		ID:          s.ids.NewID(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Department:  in.Department,
		Designation: in.Designation,
		EmployeeID:  in.EmployeeID,
		Status:      in.Status,
		JoinedOn:    in.JoinedOn,
		Role:        domain.RoleUser,
	}
	if emp.EmployeeID == "" {
		emp.EmployeeID = fmt.Sprintf("EMP-%04d", now.UnixMilli()%10000)
	}
	if emp.Status == "" {
		emp.Status = domain.EmployeeActive
	}
	if emp.JoinedOn == "" {
		emp.JoinedOn = now.Format(joinedOnLayout)
	}

	s.mu.Lock()
	s.enrolled = append(s.enrolled, emp)
	s.mu.Unlock()

	s.log.Info().Str("user_id", emp.ID).Str("employee_id", emp.EmployeeID).Str("department", emp.Department).Msg("employee enrolled")
	s.record("attendance.user.enroll", emp.ID, true)
	return emp
}

func (s *AttendanceService) record(action, subject string, applied bool) {
	s.audit.Record(domain.AuditEvent{
		Console: domain.ConsoleAttendance,
		Action:  action,
		Subject: subject,
		Applied: applied,
		At:      s.now().UTC(),
	})
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRecord(r domain.AttendanceRecord) domain.AttendanceRecord {
	r.CheckIn = cloneString(r.CheckIn)
	r.CheckOut = cloneString(r.CheckOut)
	return r
}
