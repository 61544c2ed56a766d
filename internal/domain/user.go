package domain

import "time"

// Role enumerates user roles. Role labels are static configuration
// owned by the UI layer.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStudent Role = "student"
)

// User is a platform account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Role         Role      `json:"role"`
	DepartmentID string    `json:"departmentId"`
	PositionID   string    `json:"positionId"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate checks the user invariants.
func (u User) Validate() error {
	if u.ID == "" {
		return ErrEmptyID
	}
	return nil
}

// UserDraftInput is the payload for creating or updating a user.
type UserDraftInput struct {
	Email        string `json:"email"    validate:"required,email"`
	FullName     string `json:"fullName" validate:"required,max=200"`
	Role         Role   `json:"role"     validate:"required,oneof=admin manager student"`
	DepartmentID string `json:"departmentId"`
	PositionID   string `json:"positionId"`
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role         Role
	DepartmentID string
	Search       string
	Active       *bool
}

// Department groups users and courses.
type Department struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HeadID    string `json:"headId"`
	UserCount int    `json:"userCount"`
}

// Position is a job title assignable to users.
type Position struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
