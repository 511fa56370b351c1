package models

// Role is a closed enumeration. Every authorization decision matches on it
// exhaustively; an unknown value is rejected, never treated as a guest.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleDoctor Role = "DOCTOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
