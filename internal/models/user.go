package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleSeniorExpert UserRole = "senior_expert_inspection"
	RoleMember       UserRole = "member"
)

// MutatingRoles is the allow-list for every route that changes
// inventory state.
var MutatingRoles = []UserRole{RoleAdmin, RoleSeniorExpert}

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(40);not null"`
}
