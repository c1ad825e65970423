package entity

import (
	"time"
)

// Role represents a user's access level. It is stored with the user but
// never enforced by this service.
type Role string

// Roles
const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleSuperuser Role = "SUPERUSER"
)

// IsValidRole reports whether the given literal is one of the known roles
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleUser, RoleAdmin, RoleSuperuser:
		return true
	}
	return false
}

// User represents a user record, including its credential hash
type User struct {
	ID           uint64    // Unique identifier, generated by the store
	Email        string    // Unique email address
	PasswordHash string    // One-way hash of the password, never exposed
	FirstName    string    // Given name
	LastName     string    // Family name
	Role         Role      // Access level, defaults to RoleUser
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// SafeUser is the external representation of a user. It carries no
// credential material and is the only user shape allowed past the
// system boundary.
type SafeUser struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Safe projects the user to its external representation, stripping the
// password hash.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserPatch is a sparse update for a user. A nil field was not provided
// and must be left untouched by the store.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Role         *Role
}

// IsEmpty reports whether the patch carries no fields at all
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil &&
		p.PasswordHash == nil &&
		p.FirstName == nil &&
		p.LastName == nil &&
		p.Role == nil
}

// ListUsersQuery describes an equality-filtered, ordered, paginated user
// listing. Nil filters are not applied.
type ListUsersQuery struct {
	Role  *Role
	Email *string
	Sort  SortOrder
	Take  int
	Skip  int
}
