package domain

import (
	"testing"
	"time"
)

var fixedTime = time.Date(2025, time.December, 24, 9, 0, 0, 0, time.UTC)

func TestAttendanceSummary_Add(t *testing.T) {
	var sum AttendanceSummary
	for _, st := range []AttendanceStatus{AttendancePresent, AttendanceLate, AttendancePresent, AttendanceAbsent} {
		sum.Add(AttendanceRecord{Status: st})
	}
	want := AttendanceSummary{Present: 2, Late: 1, Absent: 1, Total: 4}
	if sum != want {
		t.Fatalf("expected %+v, got %+v", want, sum)
	}
}

func TestCameraPatch_ApplyTo(t *testing.T) {
	c := CameraConfig{ID: "1", Name: "entry", Type: CameraUSB, CameraIndex: 0, IsEntry: true}

	url := "rtsp://10.0.0.2/stream"
	typ := CameraRTSP
	CameraPatch{Type: &typ, StreamURL: &url}.ApplyTo(&c)

	want := CameraConfig{ID: "1", Name: "entry", Type: CameraRTSP, StreamURL: url, CameraIndex: 0, IsEntry: true}
	if c != want {
		t.Fatalf("expected %+v, got %+v", want, c)
	}
}

func TestDecision(t *testing.T) {
	if !Allow().Allowed() {
		t.Fatalf("Allow must be allowed")
	}
	d := RedirectTo(PathLogin)
	if d.Allowed() || d.Kind != DecisionRedirect || d.Path != PathLogin {
		t.Fatalf("unexpected redirect decision: %+v", d)
	}
	if NotFound().Allowed() {
		t.Fatalf("NotFound must not be allowed")
	}
}
