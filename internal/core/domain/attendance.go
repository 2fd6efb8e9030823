package domain

// AttendanceStatus is the outcome of a working day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// AttendanceRecord is one day of attendance for one employee. Date, CheckIn,
// CheckOut and HoursWorked are display strings. A nil CheckIn usually goes
// with AttendanceAbsent, but nothing enforces it.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Date        string           `json:"date"`
	CheckIn     *string          `json:"check_in"`
	CheckOut    *string          `json:"check_out"`
	Status      AttendanceStatus `json:"status"`
	HoursWorked string           `json:"hours_worked"`
}

// AttendanceSummary counts records by status.
type AttendanceSummary struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

// Add folds one record into the summary.
func (s *AttendanceSummary) Add(r AttendanceRecord) {
	s.Total++
	switch r.Status {
	case AttendancePresent:
		s.Present++
	case AttendanceLate:
		s.Late++
	case AttendanceAbsent:
		s.Absent++
	}
}

// CameraType is the capture transport of a camera.
type CameraType string

const (
	CameraUSB  CameraType = "USB"
	CameraIP   CameraType = "IP"
	CameraRTSP CameraType = "RTSP"
)

// CameraConfig describes an entry or exit camera.
type CameraConfig struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        CameraType `json:"type"`
	StreamURL   string     `json:"stream_url"`
	CameraIndex int        `json:"camera_index"`
	IsEntry     bool       `json:"is_entry"`
}

// CameraPatch is a partial camera update; nil fields are left untouched.
// The id is never patched.
type CameraPatch struct {
	Name        *string
	Type        *CameraType
	StreamURL   *string
	CameraIndex *int
	IsEntry     *bool
}

// ApplyTo merges the non-nil fields of p into c.
func (p CameraPatch) ApplyTo(c *CameraConfig) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.StreamURL != nil {
		c.StreamURL = *p.StreamURL
	}
	if p.CameraIndex != nil {
		c.CameraIndex = *p.CameraIndex
	}
	if p.IsEntry != nil {
		c.IsEntry = *p.IsEntry
	}
}
