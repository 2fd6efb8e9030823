package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/crimsoninnovative/console/internal/api/metrics"
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

type AttendanceHandler struct {
	store ports.AttendanceStore
}

func NewAttendanceHandler(store ports.AttendanceStore) *AttendanceHandler {
	return &AttendanceHandler{store: store}
}

// scopeUser returns whose records the caller may see: employees only their
// own, administrators anyone's (user_id query, empty for all).
func scopeUser(c echo.Context, s domain.Session) string {
	if s.Role == domain.RoleUser {
		return s.User.ID
	}
	return c.QueryParam("user_id")
}

// ListRecords handles GET /v1/attendance/records.
//
// @Summary      List attendance records
// @Description  Newest first. Employees see only their own records.
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Owner filter (administrator only)"
// @Param        date     query     string  false  "Case-insensitive date search"
// @Success      200      {object}  recordsResponse
// @Failure      303      "redirect to /login"
// @Router       /v1/attendance/records [get]
func (h *AttendanceHandler) ListRecords(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}
	recs := h.store.RecordsFor(scopeUser(c, s), c.QueryParam("date"))
	return c.JSON(http.StatusOK, recordsResponse{Records: recs, Total: len(recs)})
}

// AddRecord handles POST /v1/attendance/records.
//
// @Summary      Add an attendance record
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addRecordRequest  true  "Record without id"
// @Success      201   {object}  domain.AttendanceRecord
// @Failure      303   "redirect to /login"
// @Failure      422   {object}  errorResponse
// @Router       /v1/attendance/records [post]
func (h *AttendanceHandler) AddRecord(c echo.Context) error {
	var req addRecordRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	rec := h.store.AddAttendanceRecord(req.toInput())
	metrics.StoreMutationsTotal.WithLabelValues(string(domain.ConsoleAttendance), "record", "add", "true").Inc()
	return c.JSON(http.StatusCreated, rec)
}

// Summary handles GET /v1/attendance/summary.
//
// @Summary      Attendance counts
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  false  "Owner filter (administrator only)"
// @Success      200      {object}  domain.AttendanceSummary
// @Failure      303      "redirect to /login"
// @Router       /v1/attendance/summary [get]
func (h *AttendanceHandler) Summary(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.store.Summary(scopeUser(c, s)))
}

// Profile handles GET /v1/attendance/profile.
//
// @Summary      Own profile
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      303  "redirect to /login"
// @Router       /v1/attendance/profile [get]
func (h *AttendanceHandler) Profile(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: *s.User, Summary: h.store.Summary(s.User.ID)})
}

// Cameras handles GET /v1/attendance/cameras.
//
// @Summary      List cameras
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CameraConfig
// @Failure      303  "redirect to /login"
// @Router       /v1/attendance/cameras [get]
func (h *AttendanceHandler) Cameras(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Cameras())
}

// UpdateCamera handles PATCH /v1/attendance/cameras/:id.
//
// @Summary      Update a camera
// @Description  An unknown id changes nothing and reports updated=false.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Camera id"
// @Param        body  body      patchCameraRequest  true  "Fields to change"
// @Success      200   {object}  updatedResponse
// @Failure      303   "redirect to /login"
// @Failure      422   {object}  errorResponse
// @Router       /v1/attendance/cameras/{id} [patch]
func (h *AttendanceHandler) UpdateCamera(c echo.Context) error {
	var req patchCameraRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	ok := h.store.UpdateCamera(c.Param("id"), req.toPatch())
	metrics.StoreMutationsTotal.WithLabelValues(string(domain.ConsoleAttendance), "camera", "update", strconv.FormatBool(ok)).Inc()
	return c.JSON(http.StatusOK, updatedResponse{Updated: ok})
}

// Enrollments handles GET /v1/attendance/enrollments.
//
// @Summary      List enrolled employees
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Employee
// @Failure      303  "redirect to /login"
// @Router       /v1/attendance/enrollments [get]
func (h *AttendanceHandler) Enrollments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.EnrolledUsers())
}

// Enroll handles POST /v1/attendance/enrollments.
//
// @Summary      Enroll an employee
// @Description  The employee always gets the user role. Employee id, status and join date default when omitted.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string         false  "Replay protection key"
// @Param        body             body      enrollRequest  true   "Employee details"
// @Success      201              {object}  domain.Employee
// @Failure      303              "redirect to /login"
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/attendance/enrollments [post]
func (h *AttendanceHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	emp := h.store.EnrollUser(req.toInput())
	metrics.StoreMutationsTotal.WithLabelValues(string(domain.ConsoleAttendance), "enrollment", "add", "true").Inc()
	return c.JSON(http.StatusCreated, emp)
}
