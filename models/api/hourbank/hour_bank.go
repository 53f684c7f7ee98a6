package hourbankapimodels

import (
	"time"

	"github.com/pkg/errors"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type ManualSubmitRequest struct {
	UserID        string  `json:"user_id"`
	HolidayID     string  `json:"holiday_id"`
	DeclaredHours float64 `json:"declared_hours"`
	Image         string  `json:"image"` // data URI or raw base64
}

func (r ManualSubmitRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.HolidayID == "" {
		return errors.New("holiday id is required")
	}
	if r.DeclaredHours <= 0 {
		return errors.New("declared hours must be greater than zero")
	}
	if r.Image == "" {
		return errors.New("proof image is required")
	}
	return nil
}

type ProcessApprovalRequest struct {
	UserID        string   `json:"user_id"`
	HolidayID     string   `json:"holiday_id"`
	DeclaredHours float64  `json:"declared_hours"`
	DetectedHours *float64 `json:"detected_hours"`
	Confidence    int      `json:"confidence"`
	Reason        string   `json:"reason"`
	Approved      *bool    `json:"approved"`
}

func (r ProcessApprovalRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.HolidayID == "" {
		return errors.New("holiday id is required")
	}
	if r.DeclaredHours <= 0 {
		return errors.New("declared hours must be greater than zero")
	}
	if r.DetectedHours == nil {
		return errors.New("detected hours is required")
	}
	if r.Approved == nil {
		return errors.New("verdict is required")
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return errors.New("confidence must be between 0 and 100")
	}
	return nil
}

type AnalyzeSubmitRequest struct {
	UserID        string  `json:"user_id"`
	HolidayID     string  `json:"holiday_id"`
	DeclaredHours float64 `json:"declared_hours"`
	Image         string  `json:"image"`
}

func (r AnalyzeSubmitRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.HolidayID == "" {
		return errors.New("holiday id is required")
	}
	if r.DeclaredHours <= 0 {
		return errors.New("declared hours must be greater than zero")
	}
	if r.Image == "" {
		return errors.New("proof image is required")
	}
	return nil
}

type AdminApprovalRequest struct {
	RecordID string             `json:"record_id"`
	Action   models.AdminAction `json:"action"`
	AdminID  string             `json:"admin_id"`
}

func (r AdminApprovalRequest) Validate() error {
	if r.RecordID == "" {
		return errors.New("record id is required")
	}
	if !r.Action.Valid() {
		return errors.New("action must be approve or reject")
	}
	return nil
}

type CompensationPatchRequest struct {
	Status models.CompensationStatus `json:"status"`
	Reason string                    `json:"reason"`
}

func (r CompensationPatchRequest) Validate() error {
	if !r.Status.Valid() {
		return errors.New("status must be approved, rejected or pending")
	}
	return nil
}

type CompensationView struct {
	ID            string                    `json:"id"`
	UserID        string                    `json:"user_id"`
	UserName      string                    `json:"user_name,omitempty"`
	HolidayID     string                    `json:"holiday_id"`
	HolidayName   string                    `json:"holiday_name,omitempty"`
	DeclaredHours float64                   `json:"declared_hours"`
	DetectedHours float64                   `json:"detected_hours"`
	Confidence    int                       `json:"confidence"`
	Status        models.CompensationStatus `json:"status"`
	Reason        string                    `json:"reason,omitempty"`
	AnalyzedAt    *time.Time                `json:"analyzed_at,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func CompensationConvert(rec dbmodels.HourBankCompensation) CompensationView {
	v := CompensationView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		HolidayID:     rec.HolidayID,
		DeclaredHours: rec.DeclaredHours,
		DetectedHours: rec.DetectedHours,
		Confidence:    rec.Confidence,
		Status:        rec.Status,
		Reason:        rec.Reason,
		AnalyzedAt:    rec.AnalyzedAt,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.User != nil {
		v.UserName = rec.User.GetFullName()
	}
	if rec.Holiday != nil {
		v.HolidayName = rec.Holiday.Name
	}
	return v
}

type UserHoursView struct {
	UserID        string  `json:"user_id"`
	HolidayID     string  `json:"holiday_id"`
	DetectedHours float64 `json:"detected_hours"`
}
