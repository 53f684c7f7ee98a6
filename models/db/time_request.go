package dbmodels

import (
	"page-control-backend/models"
)

type TimeRequest struct {
	BaseModel
	UserID        string `gorm:"type:varchar(36);index"`
	User          *User
	HolidayID     string `gorm:"type:varchar(36)"`
	Holiday       *Holiday
	RequestType   models.TimeRequestType   `gorm:"type:varchar(50)"`
	RequestedTime string                   `gorm:"type:varchar(10)"`
	ActualTime    string                   `gorm:"type:varchar(10)"` // set on approval
	Status        models.TimeRequestStatus `gorm:"type:varchar(50);index"`
	AdminNotes    string
	Reason        string
}
