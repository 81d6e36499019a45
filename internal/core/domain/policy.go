package domain

// Action enumerates every permission-gated operation. Handlers and services
// consult the single policy table below instead of comparing role codes inline.
type Action string

const (
	ActionPostEdit     Action = "post.edit"
	ActionPostArchive  Action = "post.archive"
	ActionPostDelete   Action = "post.delete"
	ActionUserList     Action = "user.list"
	ActionUserGet      Action = "user.get"
	ActionUserEditRole Action = "user.edit_role"
	ActionUserDelete   Action = "user.delete"
)

// Identity is the request-scoped principal reconstructed from a session
// token. Its lifetime is a single request.
type Identity struct {
	UserID   int
	RoleCode Role
}

// elevatedRoles lists, per action, the roles allowed regardless of ownership.
// Editing is deliberately absent for admin and delegate: elevated roles may
// archive or delete any post but never rewrite someone else's words.
var elevatedRoles = map[Action][]Role{
	ActionPostEdit:     nil,
	ActionPostArchive:  {RoleAdmin, RoleDelegate},
	ActionPostDelete:   {RoleAdmin, RoleDelegate},
	ActionUserList:     {RoleAdmin},
	ActionUserGet:      {RoleAdmin},
	ActionUserEditRole: {RoleAdmin},
	ActionUserDelete:   {RoleAdmin},
}

// ownedActions marks the actions where the ownership rule applies: the
// resource owner is always authorized, whatever their role.
var ownedActions = map[Action]bool{
	ActionPostEdit:    true,
	ActionPostArchive: true,
	ActionPostDelete:  true,
	ActionUserGet:     true,
}

// Allowed reports whether id may perform action on a resource owned by
// ownerID. For ownerless actions (user administration) pass ownerID 0.
func Allowed(id Identity, action Action, ownerID int) bool {
	if ownedActions[action] && ownerID != 0 && id.UserID == ownerID {
		return true
	}
	for _, r := range elevatedRoles[action] {
		if id.RoleCode == r {
			return true
		}
	}
	return false
}
