package entities

// Role is the platform-wide account role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserAccount is the acting identity resolved from a live session.
// Immutable as far as this module is concerned.
type UserAccount struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the account carries the admin role.
func (u UserAccount) IsAdmin() bool {
	return u.Role == RoleAdmin
}
