package dbmodels

import (
	"github.com/lib/pq"

	"page-control-backend/models"
)

type AbsenceRequest struct {
	BaseModel
	UserID        string `gorm:"type:varchar(36);index"`
	User          *User
	Reason        models.AbsenceReason `gorm:"type:varchar(50)"`
	Dates         pq.StringArray       `gorm:"type:text[]"` // yyyy-mm-dd, unordered as submitted
	StartTime     string               `gorm:"type:varchar(10)"`
	EndTime       string               `gorm:"type:varchar(10)"`
	Description   string
	ProofAttached bool
	ProofImage    string               `gorm:"type:varchar(512)"`
	Status        models.AbsenceStatus `gorm:"type:varchar(50);index"`
}
