package entities

import "rentwheels/internal/db"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the authenticated subject. Exactly one of User or Admin is
// set, matching Role; the role lives on the identity, not in the store.
type Identity struct {
	Role  Role
	User  *db.User
	Admin *db.Admin
}

// Key returns the stable identifier a session may carry: the phone number
// for users, the admin ID for admins. Never the password hash.
func (i Identity) Key() string {
	if i.Role == RoleAdmin && i.Admin != nil {
		return i.Admin.AdminID
	}
	if i.User != nil {
		return i.User.Phone
	}
	return ""
}

func (i Identity) DisplayName() string {
	if i.Role == RoleAdmin && i.Admin != nil {
		return i.Admin.AdminID
	}
	if i.User != nil {
		return i.User.Name
	}
	return ""
}
