package dbmodels

import (
	"time"

	"page-control-backend/models"
)

type HourBankCompensation struct {
	BaseModel
	UserID        string `gorm:"type:varchar(36);index"`
	User          *User
	HolidayID     string `gorm:"type:varchar(36);index:idx_compensation_holiday"`
	Holiday       *Holiday
	DeclaredHours float64
	DetectedHours float64
	Confidence    int `gorm:"default:0"` // 0-100
	ProofImage    string
	Status        models.CompensationStatus `gorm:"type:varchar(50);index"`
	Reason        string
	AnalyzedAt    *time.Time
}
