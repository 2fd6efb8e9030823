package service

import (
	"sort"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

// defaultRoutes maps each role to its landing view. Every domain.Role must
// have an entry; TestDefaultRoutes_CoverEveryRole enforces it.
var defaultRoutes = map[domain.Role]string{
	domain.RoleAdmin:         domain.PathAdminFaceEnrollment,
	domain.RoleAdministrator: domain.PathAdministratorDashboard,
	domain.RoleUser:          domain.PathUserMyAttendance,
}

// navigation is the sidebar of each role, in display order.
var navigation = map[domain.Role][]domain.NavItem{
	domain.RoleAdmin: {
		{Label: "Face Enrollment", Path: domain.PathAdminFaceEnrollment},
		{Label: "Settings", Path: domain.PathAdminSettings},
	},
	domain.RoleAdministrator: {
		{Label: "Dashboard", Path: domain.PathAdministratorDashboard},
		{Label: "Attendance", Path: domain.PathAdministratorAttend},
	},
	domain.RoleUser: {
		{Label: "My Attendance", Path: domain.PathUserMyAttendance},
		{Label: "My Profile", Path: domain.PathUserMyProfile},
	},
}

// Authorize decides whether a view requiring one of required may render.
// Both an anonymous session and a role mismatch redirect to the login view.
func Authorize(session domain.Session, required domain.RoleSet) domain.Decision {
	if !session.IsAuthenticated() {
		return domain.RedirectTo(domain.PathLogin)
	}
	if !required.Contains(session.Role) {
		return domain.RedirectTo(domain.PathLogin)
	}
	return domain.Allow()
}

// DefaultRouteFor returns the landing view for session.
func DefaultRouteFor(session domain.Session) string {
	if !session.IsAuthenticated() {
		return domain.PathLogin
	}
	if path, ok := defaultRoutes[session.Role]; ok {
		return path
	}
	return domain.PathLogin
}

// NavigationFor returns the sidebar entries of role, or nil for an unknown role.
func NavigationFor(role domain.Role) []domain.NavItem {
	items, ok := navigation[role]
	if !ok {
		return nil
	}
	out := make([]domain.NavItem, len(items))
	copy(out, items)
	return out
}

// RouteRule is one view of a console. Unguarded views render for anyone.
type RouteRule struct {
	Path    string         `json:"path"`
	Console domain.Console `json:"console"`
	Roles   domain.RoleSet `json:"-"`
	Guarded bool           `json:"guarded"`
}

// Navigator resolves client-side paths of one console against its route table.
type Navigator struct {
	console      domain.Console
	rules        map[string]RouteRule
	rootRedirect bool
}

// NewAttendanceNavigator returns the attendance console table: every view but
// /login is guarded, and / redirects to the session's landing view.
func NewAttendanceNavigator() *Navigator {
	admin := domain.NewRoleSet(domain.RoleAdmin)
	administrator := domain.NewRoleSet(domain.RoleAdministrator)
	user := domain.NewRoleSet(domain.RoleUser)

	return newNavigator(domain.ConsoleAttendance, true, []RouteRule{
		{Path: domain.PathLogin},
		{Path: domain.PathAdminFaceEnrollment, Roles: admin, Guarded: true},
		{Path: domain.PathAdminSettings, Roles: admin, Guarded: true},
		{Path: domain.PathAdministratorDashboard, Roles: administrator, Guarded: true},
		{Path: domain.PathAdministratorAttend, Roles: administrator, Guarded: true},
		{Path: domain.PathUserMyAttendance, Roles: user, Guarded: true},
		{Path: domain.PathUserMyProfile, Roles: user, Guarded: true},
	})
}

// NewGPUNavigator returns the GPU console table. With no roles the console is
// unguarded, which is how it has always shipped; passing roles guards every view.
func NewGPUNavigator(roles ...domain.Role) *Navigator {
	guarded := len(roles) > 0
	set := domain.NewRoleSet(roles...)

	paths := []string{
		domain.PathGPUDashboard,
		domain.PathGPUModels,
		domain.PathGPUNodes,
		domain.PathGPUDeployment,
		domain.PathGPUMonitoring,
		domain.PathGPUAnalytics,
		domain.PathGPUUsers,
	}
	rules := make([]RouteRule, 0, len(paths))
	for _, p := range paths {
		rules = append(rules, RouteRule{Path: p, Roles: set, Guarded: guarded})
	}
	return newNavigator(domain.ConsoleGPU, false, rules)
}

func newNavigator(console domain.Console, rootRedirect bool, rules []RouteRule) *Navigator {
	n := &Navigator{
		console:      console,
		rules:        make(map[string]RouteRule, len(rules)),
		rootRedirect: rootRedirect,
	}
	for _, r := range rules {
		r.Console = console
		n.rules[r.Path] = r
	}
	return n
}

func (n *Navigator) Console() domain.Console { return n.console }

// Resolve is evaluated on every navigation and never cached.
func (n *Navigator) Resolve(session domain.Session, path string) domain.Decision {
	if n.rootRedirect && path == domain.PathRoot {
		return domain.RedirectTo(DefaultRouteFor(session))
	}
	rule, ok := n.rules[path]
	if !ok {
		return domain.NotFound()
	}
	if !rule.Guarded {
		return domain.Allow()
	}
	return Authorize(session, rule.Roles)
}

// Rule returns the rule registered for path.
func (n *Navigator) Rule(path string) (RouteRule, bool) {
	r, ok := n.rules[path]
	return r, ok
}

// Rules returns every rule sorted by path.
func (n *Navigator) Rules() []RouteRule {
	out := make([]RouteRule, 0, len(n.rules))
	for _, r := range n.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
