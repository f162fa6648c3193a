package models

// UserRole determines what a user may see and change.
type UserRole string

const (
	RoleNormalUser UserRole = "normal_user"
	RoleSuperUser  UserRole = "super_user"
)

// User represents a dashboard user.
type User struct {
	Base
	Email string   `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Name  string   `gorm:"not null" json:"name" validate:"required"`
	Role  UserRole `gorm:"not null;default:normal_user" json:"role" validate:"required,oneof=normal_user super_user"`
}

// IsSuperUser reports whether the user holds the privileged role.
func (u *User) IsSuperUser() bool {
	return u.Role == RoleSuperUser
}
