package entity

import "github.com/google/uuid"

type RoleName string

const (
	RoleAdmin   RoleName = "admin"
	RoleTeacher RoleName = "teacher"
	RoleStudent RoleName = "student"
	RoleStaff   RoleName = "staff"
	RoleAcademy RoleName = "academy"
)

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name RoleName  `gorm:"type:varchar(10);uniqueIndex;not null"`
}

// ConflictRolePair names two roles one user may not hold at the same time.
type ConflictRolePair struct {
	First   RoleName
	Second  RoleName
	Message string
}

var ConflictRolePairs = []ConflictRolePair{
	{RoleAdmin, RoleStudent, "A user cannot be both an admin and a student."},
	{RoleAcademy, RoleStaff, "A user cannot be both an academy owner and staff."},
	{RoleTeacher, RoleStudent, "A user cannot be both a teacher and a student."},
	{RoleAdmin, RoleAcademy, "An admin cannot be an academy owner."},
}
