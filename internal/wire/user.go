package wire

import "github.com/edtrack/edtrack-go/internal/domain"

// User is the backend's account shape. Activity travels as a 0/1
// integer, a leftover from the original schema.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId"`
	PositionID   string `json:"positionId"`
	IsActive     int    `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
}

// roleFromWire maps a backend role string to the internal enumeration;
// unknown or missing roles default to student, the least privileged.
func roleFromWire(s string) domain.Role {
	switch s {
	case "admin":
		return domain.RoleAdmin
	case "manager":
		return domain.RoleManager
	default:
		return domain.RoleStudent
	}
}

// UserFromWire maps a backend account to the internal shape.
func UserFromWire(w User) domain.User {
	return domain.User{
		ID:           w.ID,
		Email:        w.Email,
		FullName:     w.FullName,
		Role:         roleFromWire(w.Role),
		DepartmentID: w.DepartmentID,
		PositionID:   w.PositionID,
		Active:       w.IsActive != 0,
		CreatedAt:    parseTime(w.CreatedAt),
	}
}

// UserDraft is the create/update payload shape.
type UserDraft struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentId,omitempty"`
	PositionID   string `json:"positionId,omitempty"`
}

// UserDraftToWire maps a draft input to the backend payload.
func UserDraftToWire(in domain.UserDraftInput) UserDraft {
	return UserDraft{
		Email:        in.Email,
		FullName:     in.FullName,
		Role:         string(in.Role),
		DepartmentID: in.DepartmentID,
		PositionID:   in.PositionID,
	}
}

// Department is the backend's department shape.
type Department struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HeadID    string `json:"headId"`
	UserCount int    `json:"userCount"`
}

// DepartmentFromWire maps a backend department to the internal shape.
func DepartmentFromWire(w Department) domain.Department {
	return domain.Department(w)
}

// Position is the backend's position shape.
type Position struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PositionFromWire maps a backend position to the internal shape.
func PositionFromWire(w Position) domain.Position {
	return domain.Position(w)
}
