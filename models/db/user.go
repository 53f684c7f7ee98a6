package dbmodels

import (
	"fmt"
	"strings"

	"page-control-backend/models"
)

type User struct {
	BaseModel
	FirstName      string          `gorm:"type:varchar(100)"`
	LastName       string          `gorm:"type:varchar(100)"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash   string          `gorm:"type:varchar(255)"`
	Role           models.UserRole `gorm:"type:varchar(50)"`
	Shift          models.WorkShift `gorm:"type:varchar(10)"`
	ProfilePicture string          `gorm:"type:varchar(512)"`
}

func (u User) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", u.FirstName, u.LastName))
}
