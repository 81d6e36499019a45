package domain

import "testing"

func TestAllowed(t *testing.T) {
	owner := Identity{UserID: 1, RoleCode: RoleWilder}
	otherWilder := Identity{UserID: 2, RoleCode: RoleWilder}
	delegate := Identity{UserID: 3, RoleCode: RoleDelegate}
	admin := Identity{UserID: 4, RoleCode: RoleAdmin}

	tests := []struct {
		name    string
		ident   Identity
		action  Action
		ownerID int
		want    bool
	}{
		// Ownership rule: the creator may always act on their own post.
		{"owner edits own post", owner, ActionPostEdit, 1, true},
		{"owner archives own post", owner, ActionPostArchive, 1, true},
		{"owner deletes own post", owner, ActionPostDelete, 1, true},

		// A wilder has no reach beyond their own posts.
		{"wilder edits another's post", otherWilder, ActionPostEdit, 1, false},
		{"wilder archives another's post", otherWilder, ActionPostArchive, 1, false},
		{"wilder deletes another's post", otherWilder, ActionPostDelete, 1, false},

		// Delegates and admins moderate (archive/delete) but never edit.
		{"delegate edits another's post", delegate, ActionPostEdit, 1, false},
		{"delegate archives another's post", delegate, ActionPostArchive, 1, true},
		{"delegate deletes another's post", delegate, ActionPostDelete, 1, true},
		{"admin edits another's post", admin, ActionPostEdit, 1, false},
		{"admin archives another's post", admin, ActionPostArchive, 1, true},
		{"admin deletes another's post", admin, ActionPostDelete, 1, true},

		// User administration is admin only.
		{"admin lists users", admin, ActionUserList, 0, true},
		{"delegate lists users", delegate, ActionUserList, 0, false},
		{"wilder lists users", otherWilder, ActionUserList, 0, false},
		{"admin edits role", admin, ActionUserEditRole, 0, true},
		{"delegate edits role", delegate, ActionUserEditRole, 0, false},
		{"admin deletes user", admin, ActionUserDelete, 0, true},
		{"wilder deletes user", otherWilder, ActionUserDelete, 0, false},

		// Account lookup: admin or self.
		{"wilder reads own account", owner, ActionUserGet, 1, true},
		{"wilder reads another account", otherWilder, ActionUserGet, 1, false},
		{"admin reads any account", admin, ActionUserGet, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.ident, tt.action, tt.ownerID); got != tt.want {
				t.Fatalf("Allowed(%+v, %s, %d) = %v, want %v", tt.ident, tt.action, tt.ownerID, got, tt.want)
			}
		})
	}
}

func TestRoleByName(t *testing.T) {
	role, ok := RoleByName("delegate")
	if !ok || role != RoleDelegate {
		t.Fatalf("expected delegate code %s, got %s (%v)", RoleDelegate, role, ok)
	}

	if _, ok := RoleByName("superuser"); ok {
		t.Fatalf("unknown role name must not resolve")
	}
}

func TestRoleName(t *testing.T) {
	if RoleAdmin.Name() != "admin" {
		t.Fatalf("unexpected name for admin: %s", RoleAdmin.Name())
	}
	if Role("9999").Valid() {
		t.Fatalf("unknown code must not be valid")
	}
}

func TestNormalizeColor(t *testing.T) {
	if NormalizeColor(ColorPink) != ColorPink {
		t.Fatalf("known color must pass through")
	}
	if NormalizeColor("#123456") != ColorGreen {
		t.Fatalf("unknown color must fall back to the default")
	}
}
