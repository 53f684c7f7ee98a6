package dbmodels

import "time"

type Holiday struct {
	BaseModel
	Name     string    `gorm:"type:varchar(255)"`
	Date     time.Time `gorm:"index"`
	Deadline time.Time
	MaxHours float64
	Active   bool `gorm:"default:true"`
}
