package holidayapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "page-control-backend/models/db"
)

type CreateRequest struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Deadline time.Time `json:"deadline"`
	MaxHours float64   `json:"max_hours"`
}

func (r CreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	if r.MaxHours <= 0 {
		return errors.New("max hours must be greater than zero")
	}
	return nil
}

type HolidayView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Deadline time.Time `json:"deadline"`
	MaxHours float64   `json:"max_hours"`
	Active   bool      `json:"active"`
}

func HolidayConvert(rec dbmodels.Holiday) HolidayView {
	return HolidayView{
		ID:       rec.ID,
		Name:     rec.Name,
		Date:     rec.Date,
		Deadline: rec.Deadline,
		MaxHours: rec.MaxHours,
		Active:   rec.Active,
	}
}
