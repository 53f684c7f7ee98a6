package timerequesthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"page-control-backend/config"
	"page-control-backend/db"
	holidaystore "page-control-backend/lib/holiday/store"
	"page-control-backend/lib/smtp"
	timerequeststore "page-control-backend/lib/time-request/store"
	usersstore "page-control-backend/lib/users/store"
	"page-control-backend/models"
	timereqapimodels "page-control-backend/models/api/timereq"
	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(payload timereqapimodels.CreateRequest) (id string, hMsg string, err error)
	Decide(requestID string, payload timereqapimodels.DecisionRequest) (hMsg string, err error)
	ListByUser(userID string) ([]timereqapimodels.TimeRequestView, error)
	ListPending() ([]timereqapimodels.TimeRequestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        timerequeststore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
		holidayStore: holidaystore.NewInstance(db.DB),
		mailer:       smtp.Instance,
	}
}

type impl struct {
	store        timerequeststore.Provider
	usersStore   usersstore.Provider
	holidayStore holidaystore.Provider
	mailer       smtp.Provider
}

func (i impl) Create(payload timereqapimodels.CreateRequest) (id string, hMsg string, err error) {
	user, err := i.usersStore.GetByID(payload.UserID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "user not found", nil
	}
	holiday, err := i.holidayStore.GetByID(payload.HolidayID)
	if err != nil {
		return "", "", err
	}
	if holiday == nil {
		return "", "holiday not found", nil
	}

	id, err = i.store.Create(dbmodels.TimeRequest{
		UserID:        user.ID,
		HolidayID:     holiday.ID,
		RequestType:   payload.RequestType,
		RequestedTime: payload.RequestedTime,
		Reason:        payload.Reason,
		Status:        models.TimeRequestStatusPending,
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create time request")
	}
	return id, "", nil
}

// Decide resolves a pending request. An approval records the actual time the
// admin settled on, a rejection only stores the notes.
func (i impl) Decide(requestID string, payload timereqapimodels.DecisionRequest) (hMsg string, err error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "time request not found", nil
	}
	if rec.Status != models.TimeRequestStatusPending {
		return "time request is already resolved", nil
	}

	status := models.TimeRequestStatusApproved
	if payload.Action == models.AdminActionReject {
		status = models.TimeRequestStatusRejected
	}
	updMap := map[string]interface{}{
		"status":      status,
		"admin_notes": payload.AdminNotes,
	}
	if payload.Action == models.AdminActionApprove {
		actualTime := payload.ActualTime
		if actualTime == "" {
			actualTime = rec.RequestedTime
		}
		updMap["actual_time"] = actualTime
	}
	if err = i.store.Update(requestID, updMap); err != nil {
		return "", errors.Wrap(err, "failed to update time request")
	}
	i.notifyDecision(rec, status)
	return "", nil
}

func (i impl) ListByUser(userID string) ([]timereqapimodels.TimeRequestView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]timereqapimodels.TimeRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, timereqapimodels.TimeRequestConvert(rec))
	}
	return result, nil
}

func (i impl) ListPending() ([]timereqapimodels.TimeRequestView, error) {
	list, err := i.store.ListPending()
	if err != nil {
		return nil, err
	}
	result := make([]timereqapimodels.TimeRequestView, 0, len(list))
	for _, rec := range list {
		result = append(result, timereqapimodels.TimeRequestConvert(rec))
	}
	return result, nil
}

// notifyDecision is best effort, a failed e-mail never fails the decision.
func (i impl) notifyDecision(rec *dbmodels.TimeRequest, status models.TimeRequestStatus) {
	if i.mailer == nil {
		return
	}
	user, err := i.usersStore.GetByID(rec.UserID)
	if err != nil || user == nil || user.Email == "" {
		return
	}
	message := "Your time correction request was " + string(status) + "."
	err = i.mailer.SendEMail(config.Conf.Smtp.Sender, user.Email, message, "Time correction request")
	if err != nil {
		log.WithError(err).Warn("failed to send time request decision e-mail")
	}
}
