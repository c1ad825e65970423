package dto

// CreateUserRequest represents the API request for creating a user
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=USER ADMIN SUPERUSER"`
}

// UpdateUserRequest represents a partial user update. Absent fields stay
// nil and are never applied.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
	FirstName *string `json:"firstName" binding:"omitempty,min=1"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1"`
	Role      *string `json:"role" binding:"omitempty,oneof=USER ADMIN SUPERUSER"`
}

// IsEmpty reports whether no recognized field was provided
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil &&
		r.Password == nil &&
		r.FirstName == nil &&
		r.LastName == nil &&
		r.Role == nil
}

// ListUsersQuery represents the query parameters of the user listing.
// Pagination values are validated for shape here and clamped by the
// service, never rejected for being out of range.
type ListUsersQuery struct {
	Role  *string `form:"role" binding:"omitempty,oneof=USER ADMIN SUPERUSER"`
	Email *string `form:"email" binding:"omitempty,email"`
	Sort  *string `form:"sort"`
	Take  *int    `form:"take"`
	Skip  *int    `form:"skip"`
}
