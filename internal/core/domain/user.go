package domain

// Role identifies a privilege tier by its numeric code. The code, never the
// display name, is the authorization discriminant throughout the system.
type Role string

const (
	RoleAdmin    Role = "2013"
	RoleDelegate Role = "4004"
	RoleWilder   Role = "5067"
)

// roleNames is the static role code ↔ display name table.
var roleNames = map[Role]string{
	RoleAdmin:    "admin",
	RoleDelegate: "delegate",
	RoleWilder:   "wilder",
}

// Valid reports whether r is one of the known role codes.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Name returns the display name for the role, or "" for an unknown code.
func (r Role) Name() string {
	return roleNames[r]
}

// RoleByName resolves a display name ("admin", "delegate", "wilder") to its
// role code. The second return value is false for unknown names.
func RoleByName(name string) (Role, bool) {
	for code, n := range roleNames {
		if n == name {
			return code, true
		}
	}
	return "", false
}

// User models a registered wall account.
type User struct {
	ID           int    `json:"userId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	RoleCode     Role   `json:"roleCode"`
}

// RoleName returns the display name of the user's role.
func (u *User) RoleName() string {
	return u.RoleCode.Name()
}
