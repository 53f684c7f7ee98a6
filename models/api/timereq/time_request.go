package timereqapimodels

import (
	"time"

	"github.com/pkg/errors"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type CreateRequest struct {
	UserID        string                 `json:"user_id"`
	HolidayID     string                 `json:"holiday_id"`
	RequestType   models.TimeRequestType `json:"request_type"`
	RequestedTime string                 `json:"requested_time"`
	Reason        string                 `json:"reason"`
}

func (r CreateRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.HolidayID == "" {
		return errors.New("holiday id is required")
	}
	if !r.RequestType.Valid() {
		return errors.New("request type must be missing_entry or missing_exit")
	}
	if r.RequestedTime == "" {
		return errors.New("requested time is required")
	}
	return nil
}

type DecisionRequest struct {
	Action     models.AdminAction `json:"action"`
	ActualTime string             `json:"actual_time"`
	AdminNotes string             `json:"admin_notes"`
}

func (r DecisionRequest) Validate() error {
	if !r.Action.Valid() {
		return errors.New("action must be approve or reject")
	}
	return nil
}

type TimeRequestView struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"user_id"`
	UserName      string                   `json:"user_name,omitempty"`
	HolidayID     string                   `json:"holiday_id"`
	RequestType   models.TimeRequestType   `json:"request_type"`
	RequestedTime string                   `json:"requested_time"`
	ActualTime    string                   `json:"actual_time,omitempty"`
	Status        models.TimeRequestStatus `json:"status"`
	AdminNotes    string                   `json:"admin_notes,omitempty"`
	Reason        string                   `json:"reason,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
}

func TimeRequestConvert(rec dbmodels.TimeRequest) TimeRequestView {
	v := TimeRequestView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		HolidayID:     rec.HolidayID,
		RequestType:   rec.RequestType,
		RequestedTime: rec.RequestedTime,
		ActualTime:    rec.ActualTime,
		Status:        rec.Status,
		AdminNotes:    rec.AdminNotes,
		Reason:        rec.Reason,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.User != nil {
		v.UserName = rec.User.GetFullName()
	}
	return v
}
