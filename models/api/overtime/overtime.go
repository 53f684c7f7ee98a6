package overtimeapimodels

import (
	"time"

	"github.com/pkg/errors"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type CreateRequest struct {
	UserID      string  `json:"user_id"`
	HolidayID   string  `json:"holiday_id"`
	OptionID    string  `json:"option_id"`
	OptionLabel string  `json:"option_label"`
	Hours       float64 `json:"hours"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Task        string  `json:"task"`
}

func (r CreateRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.HolidayID == "" {
		return errors.New("holiday id is required")
	}
	if r.Hours <= 0 || r.Hours > 24 {
		return errors.New("hours must be between 0 and 24")
	}
	return nil
}

type RecordView struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	UserName    string              `json:"user_name,omitempty"`
	HolidayID   string              `json:"holiday_id"`
	HolidayName string              `json:"holiday_name,omitempty"`
	Kind        models.RecordKind   `json:"kind"`
	OptionID    string              `json:"option_id,omitempty"`
	OptionLabel string              `json:"option_label,omitempty"`
	Hours       float64             `json:"hours"`
	StartTime   string              `json:"start_time,omitempty"`
	EndTime     string              `json:"end_time,omitempty"`
	Task        string              `json:"task,omitempty"`
	Status      models.RecordStatus `json:"status"`
	ProofImage  string              `json:"proof_image,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func RecordConvert(rec dbmodels.OvertimeRecord) RecordView {
	v := RecordView{
		ID:          rec.ID,
		UserID:      rec.UserID,
		HolidayID:   rec.HolidayID,
		HolidayName: rec.HolidayName,
		Kind:        rec.EffectiveKind(),
		OptionID:    rec.OptionID,
		OptionLabel: rec.OptionLabel,
		Hours:       rec.Hours,
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
		Task:        rec.Task,
		Status:      rec.Status,
		ProofImage:  rec.ProofImage,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.User != nil {
		v.UserName = rec.User.GetFullName()
	}
	if rec.Holiday != nil && v.HolidayName == "" {
		v.HolidayName = rec.Holiday.Name
	}
	return v
}

type SummaryView struct {
	Registered    float64 `json:"registered"`
	Total         float64 `json:"total"`
	BankHours     float64 `json:"bank_hours"`
	OriginalTotal float64 `json:"original_total"`
	Percentage    int     `json:"percentage"`
}
