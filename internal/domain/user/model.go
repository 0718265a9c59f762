package user

import "time"

// User is the login identity linked one-to-one with a league member.
type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time
}

// Principal is the authenticated caller of an admin endpoint.
type Principal struct {
	Subject string
	Name    string
	Roles   []string
}

const RoleAdmin = "admin"

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
