package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployee UserRole = "employee"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:    "Administrator",
	UserRoleEmployee: "Employee",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

type WorkShift string

const (
	ShiftEarly WorkShift = "8-17"
	ShiftLate  WorkShift = "9-18"
)
