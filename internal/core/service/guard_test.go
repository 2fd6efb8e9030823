package service

import (
	"testing"
	"time"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

func sessionAs(role domain.Role) domain.Session {
	return domain.NewSession("sid-1", seedEmployees()[role], role, time.Unix(0, 0))
}

func TestAuthorize_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		session  domain.Session
		required domain.RoleSet
		want     domain.Decision
	}{
		{"anonymous", domain.AnonymousSession(), domain.NewRoleSet(domain.RoleAdmin), domain.RedirectTo("/login")},
		{"wrong role", sessionAs(domain.RoleUser), domain.NewRoleSet(domain.RoleAdmin), domain.RedirectTo("/login")},
		{"matching role", sessionAs(domain.RoleAdministrator), domain.NewRoleSet(domain.RoleAdministrator), domain.Allow()},
		{"one of many", sessionAs(domain.RoleUser), domain.NewRoleSet(domain.RoleAdministrator, domain.RoleUser), domain.Allow()},
		{"empty set", sessionAs(domain.RoleAdmin), domain.NewRoleSet(), domain.RedirectTo("/login")},
		{"half-built session", domain.Session{Authenticated: true, Role: domain.RoleAdmin}, domain.NewRoleSet(domain.RoleAdmin), domain.RedirectTo("/login")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Authorize(tc.session, tc.required)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			if again := Authorize(tc.session, tc.required); again != got {
				t.Fatalf("Authorize is not deterministic: %+v then %+v", got, again)
			}
		})
	}
}

func TestDefaultRouteFor(t *testing.T) {
	cases := map[string]struct {
		session domain.Session
		want    string
	}{
		"anonymous":     {domain.AnonymousSession(), "/login"},
		"admin":         {sessionAs(domain.RoleAdmin), "/admin/face-enrollment"},
		"administrator": {sessionAs(domain.RoleAdministrator), "/administrator/dashboard"},
		"user":          {sessionAs(domain.RoleUser), "/user/my-attendance"},
		"unknown role": {
			domain.NewSession("sid", domain.Employee{ID: "x"}, domain.Role("auditor"), time.Unix(0, 0)),
			"/login",
		},
	}
	for name, tc := range cases {
		if got := DefaultRouteFor(tc.session); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", name, tc.want, got)
		}
	}
}

func TestDefaultRoutes_CoverEveryRole(t *testing.T) {
	for _, r := range domain.Roles() {
		if _, ok := defaultRoutes[r]; !ok {
			t.Fatalf("role %s has no default route", r)
		}
		if len(navigation[r]) == 0 {
			t.Fatalf("role %s has no navigation entries", r)
		}
		if _, ok := seedEmployees()[r]; !ok {
			t.Fatalf("role %s has no seed employee", r)
		}
	}
}

func TestNavigationFor(t *testing.T) {
	items := NavigationFor(domain.RoleAdmin)
	if len(items) != 2 || items[0].Path != domain.PathAdminFaceEnrollment || items[1].Path != domain.PathAdminSettings {
		t.Fatalf("unexpected admin navigation: %+v", items)
	}
	items[0].Label = "mutated"
	if NavigationFor(domain.RoleAdmin)[0].Label != "Face Enrollment" {
		t.Fatalf("NavigationFor must return a copy")
	}
	if got := NavigationFor(domain.Role("ghost")); got != nil {
		t.Fatalf("expected nil for unknown role, got %+v", got)
	}
}

func TestNavigator_Attendance(t *testing.T) {
	nav := NewAttendanceNavigator()
	admin := sessionAs(domain.RoleAdmin)
	user := sessionAs(domain.RoleUser)

	cases := []struct {
		name    string
		session domain.Session
		path    string
		want    domain.Decision
	}{
		{"login is public", domain.AnonymousSession(), "/login", domain.Allow()},
		{"root redirects anonymous", domain.AnonymousSession(), "/", domain.RedirectTo("/login")},
		{"root redirects to landing", admin, "/", domain.RedirectTo("/admin/face-enrollment")},
		{"admin settings", admin, "/admin/settings", domain.Allow()},
		{"user on admin view", user, "/admin/settings", domain.RedirectTo("/login")},
		{"user profile", user, "/user/my-profile", domain.Allow()},
		{"anonymous on guarded view", domain.AnonymousSession(), "/administrator/attendance", domain.RedirectTo("/login")},
		{"unknown path", admin, "/nope", domain.NotFound()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nav.Resolve(tc.session, tc.path); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestNavigator_GPU_UnguardedByDefault(t *testing.T) {
	nav := NewGPUNavigator()

	for _, r := range nav.Rules() {
		if r.Guarded {
			t.Fatalf("expected %s to be unguarded", r.Path)
		}
		if got := nav.Resolve(domain.AnonymousSession(), r.Path); got != domain.Allow() {
			t.Fatalf("%s: expected allow, got %+v", r.Path, got)
		}
	}
	if len(nav.Rules()) != 7 {
		t.Fatalf("expected 7 GPU views, got %d", len(nav.Rules()))
	}
	if got := nav.Resolve(domain.AnonymousSession(), "/login"); got != domain.NotFound() {
		t.Fatalf("GPU console has no login view, got %+v", got)
	}
}

func TestNavigator_GPU_Guarded(t *testing.T) {
	nav := NewGPUNavigator(domain.RoleAdministrator)

	if got := nav.Resolve(domain.AnonymousSession(), "/nodes"); got != domain.RedirectTo("/login") {
		t.Fatalf("expected redirect, got %+v", got)
	}
	if got := nav.Resolve(sessionAs(domain.RoleUser), "/nodes"); got != domain.RedirectTo("/login") {
		t.Fatalf("expected redirect for user, got %+v", got)
	}
	if got := nav.Resolve(sessionAs(domain.RoleAdministrator), "/"); got != domain.Allow() {
		t.Fatalf("expected allow on dashboard, got %+v", got)
	}
	rule, ok := nav.Rule("/users")
	if !ok || !rule.Guarded || rule.Console != domain.ConsoleGPU {
		t.Fatalf("unexpected rule: %+v", rule)
	}
}
