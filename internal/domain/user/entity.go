package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Academic office - manages reference data and reviews reports
	RoleLecturer Role = "lecturer" // Teaches slots, opens attendance sessions
	RoleStudent  Role = "student"  // Enrolled in classes, checks in
)

type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage academic reference data
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsLecturer checks if user can open attendance sessions
func (u *User) IsLecturer() bool {
	return u.Role == RoleLecturer
}

// IsStudent checks if user can redeem codes and check in
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
