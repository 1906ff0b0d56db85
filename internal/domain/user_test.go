package domain

import "testing"

func TestHasPermission(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		role     Role
		required []Role
		want     bool
	}{
		{"director is not admin", RoleDirector, []Role{RoleAdmin}, false},
		{"admin in admin+hr", RoleAdmin, []Role{RoleAdmin, RoleHR}, true},
		{"hr not in admin-only", RoleHR, []Role{RoleAdmin}, false},
		{"admin is not implied", RoleAdmin, []Role{RoleHR, RoleDirector}, false},
		{"empty set denies everyone", RoleAdmin, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPermission(tc.role, tc.required); got != tc.want {
				t.Fatalf("HasPermission(%q, %v) = %v, want %v", tc.role, tc.required, got, tc.want)
			}
		})
	}
}
