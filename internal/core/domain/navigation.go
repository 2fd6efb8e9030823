package domain

import "fmt"

// Client-side view paths of the attendance console.
const (
	PathLogin                  = "/login"
	PathRoot                   = "/"
	PathAdminFaceEnrollment    = "/admin/face-enrollment"
	PathAdminSettings          = "/admin/settings"
	PathAdministratorDashboard = "/administrator/dashboard"
	PathAdministratorAttend    = "/administrator/attendance"
	PathUserMyAttendance       = "/user/my-attendance"
	PathUserMyProfile          = "/user/my-profile"
)

// Client-side view paths of the GPU console.
const (
	PathGPUDashboard  = "/"
	PathGPUModels     = "/models"
	PathGPUNodes      = "/nodes"
	PathGPUDeployment = "/deployment"
	PathGPUMonitoring = "/monitoring"
	PathGPUAnalytics  = "/analytics"
	PathGPUUsers      = "/users"
)

// Console identifies one of the two independent dashboards.
type Console string

const (
	ConsoleAttendance Console = "attendance"
	ConsoleGPU        Console = "gpu"
)

func ParseConsole(s string) (Console, error) {
	switch Console(s) {
	case ConsoleAttendance, ConsoleGPU:
		return Console(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidConsole, s)
}

// DecisionKind is the outcome of a navigation check.
type DecisionKind string

const (
	DecisionAllow    DecisionKind = "allow"
	DecisionRedirect DecisionKind = "redirect"
	DecisionNotFound DecisionKind = "not_found"
)

// Decision is what the route guard tells the view layer to do. Path is the
// redirect target for DecisionRedirect and empty otherwise.
type Decision struct {
	Kind DecisionKind `json:"decision"`
	Path string       `json:"path,omitempty"`
}

func Allow() Decision { return Decision{Kind: DecisionAllow} }

func RedirectTo(path string) Decision { return Decision{Kind: DecisionRedirect, Path: path} }

func NotFound() Decision { return Decision{Kind: DecisionNotFound} }

func (d Decision) Allowed() bool { return d.Kind == DecisionAllow }

// NavItem is one sidebar entry.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}
