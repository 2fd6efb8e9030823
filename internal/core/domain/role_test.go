package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":          RoleAdmin,
		" Administrator": RoleAdministrator,
		"USER":           RoleUser,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}

	for _, bad := range []string{"", "superuser", "admins"} {
		if _, err := ParseRole(bad); !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("ParseRole(%q): expected ErrUnknownRole, got %v", bad, err)
		}
	}
}

func TestRoleSet(t *testing.T) {
	set := NewRoleSet(RoleUser, RoleAdmin)

	if !set.Contains(RoleAdmin) || !set.Contains(RoleUser) {
		t.Fatalf("expected members to be contained")
	}
	if set.Contains(RoleAdministrator) || set.Contains("") {
		t.Fatalf("unexpected member")
	}
	got := set.Slice()
	if len(got) != 2 || got[0] != RoleAdmin || got[1] != RoleUser {
		t.Fatalf("expected enumeration order, got %v", got)
	}
	if NewRoleSet().Contains(RoleAdmin) {
		t.Fatalf("empty set must contain nothing")
	}
}

func TestSession_IsAuthenticated(t *testing.T) {
	emp := Employee{ID: "3", Email: "e@x.io", Role: RoleUser}

	if AnonymousSession().IsAuthenticated() {
		t.Fatalf("anonymous session must not be authenticated")
	}
	if !NewSession("s1", emp, RoleUser, fixedTime).IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
	if (Session{Authenticated: true, Role: RoleUser}).IsAuthenticated() {
		t.Fatalf("session without user must not be authenticated")
	}
	if (Session{Authenticated: true, User: &emp}).IsAuthenticated() {
		t.Fatalf("session without role must not be authenticated")
	}
}

func TestSession_CloneDetachesUser(t *testing.T) {
	s := NewSession("s1", Employee{FirstName: "Ada"}, RoleUser, fixedTime)

	c := s.Clone()
	c.User.FirstName = "Bo"
	if s.User.FirstName != "Ada" {
		t.Fatalf("clone shares user with original")
	}
}
