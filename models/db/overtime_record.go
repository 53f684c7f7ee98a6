package dbmodels

import (
	"time"

	"page-control-backend/models"
)

type OvertimeRecord struct {
	BaseModel
	UserID      string `gorm:"type:varchar(36);index"`
	User        *User
	HolidayID   string `gorm:"type:varchar(36);index:idx_overtime_holiday"`
	Holiday     *Holiday
	HolidayName string    `gorm:"type:varchar(255)"` // denormalized for exports
	HolidayDate time.Time
	Kind        models.RecordKind `gorm:"type:varchar(50);index"`
	OptionID    string            `gorm:"type:varchar(100)"`
	OptionLabel string            `gorm:"type:varchar(255)"`
	Hours       float64
	StartTime   string `gorm:"type:varchar(10)"` // empty for bank-hour rows
	EndTime     string `gorm:"type:varchar(10)"`
	Task        string
	Status      models.RecordStatus `gorm:"type:varchar(50);index"`
	ProofImage  string              `gorm:"type:varchar(512)"`
}

// EffectiveKind trusts the explicit kind and falls back to the legacy
// option_id sentinels for rows that predate the kind column.
func (r OvertimeRecord) EffectiveKind() models.RecordKind {
	if r.Kind != "" {
		return r.Kind
	}
	return models.KindFromOptionID(r.OptionID)
}
