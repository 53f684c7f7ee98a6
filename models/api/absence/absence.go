package absenceapimodels

import (
	"time"

	"github.com/pkg/errors"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type CreateRequest struct {
	UserID      string               `json:"user_id"`
	Reason      models.AbsenceReason `json:"reason"`
	Dates       []string             `json:"dates"` // yyyy-mm-dd
	StartTime   string               `json:"start_time"`
	EndTime     string               `json:"end_time"`
	Description string               `json:"description"`
	Image       string               `json:"image"` // optional proof
}

func (r CreateRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	if r.Reason == "" {
		return errors.New("reason is required")
	}
	if len(r.Dates) == 0 {
		return errors.New("at least one date is required")
	}
	for _, d := range r.Dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return errors.Errorf("invalid date %q, expected yyyy-mm-dd", d)
		}
	}
	return nil
}

type ProofRequest struct {
	Image string `json:"image"` // data URI or raw base64
}

func (r ProofRequest) Validate() error {
	if r.Image == "" {
		return errors.New("image is required")
	}
	return nil
}

type DecisionRequest struct {
	Action models.AdminAction `json:"action"`
}

func (r DecisionRequest) Validate() error {
	if !r.Action.Valid() {
		return errors.New("action must be approve or reject")
	}
	return nil
}

type AbsenceView struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	UserName      string               `json:"user_name,omitempty"`
	Reason        models.AbsenceReason `json:"reason"`
	ReasonLabel   string               `json:"reason_label"`
	Dates         []string             `json:"dates"`
	StartTime     string               `json:"start_time,omitempty"`
	EndTime       string               `json:"end_time,omitempty"`
	Description   string               `json:"description,omitempty"`
	ProofAttached bool                 `json:"proof_attached"`
	Status        models.AbsenceStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func AbsenceConvert(rec dbmodels.AbsenceRequest) AbsenceView {
	v := AbsenceView{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Reason:        rec.Reason,
		ReasonLabel:   rec.Reason.ToHuman(),
		Dates:         rec.Dates,
		StartTime:     rec.StartTime,
		EndTime:       rec.EndTime,
		Description:   rec.Description,
		ProofAttached: rec.ProofAttached,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.User != nil {
		v.UserName = rec.User.GetFullName()
	}
	return v
}
