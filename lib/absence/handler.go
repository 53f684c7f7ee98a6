package absencehandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"page-control-backend/db"
	absencestore "page-control-backend/lib/absence/store"
	filestorage "page-control-backend/lib/file-storage"
	"page-control-backend/lib/notification"
	usersstore "page-control-backend/lib/users/store"
	"page-control-backend/models"
	absenceapimodels "page-control-backend/models/api/absence"
	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, payload absenceapimodels.CreateRequest) (id string, hMsg string, err error)
	AttachProof(ctx context.Context, requestID string, image string) (hMsg string, err error)
	Decide(requestID string, action models.AdminAction) (hMsg string, err error)
	ListByUser(userID string) ([]absenceapimodels.AbsenceView, error)
	ListAll() ([]absenceapimodels.AbsenceView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       absencestore.NewInstance(db.DB),
		usersStore:  usersstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
		notifier:    notification.Instance,
	}
}

type impl struct {
	store       absencestore.Provider
	usersStore  usersstore.Provider
	fileStorage filestorage.Provider
	notifier    notification.Provider
}

func (i impl) Create(ctx context.Context, payload absenceapimodels.CreateRequest) (id string, hMsg string, err error) {
	user, err := i.usersStore.GetByID(payload.UserID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "user not found", nil
	}

	rec := dbmodels.AbsenceRequest{
		UserID:      user.ID,
		Reason:      payload.Reason,
		Dates:       payload.Dates,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Description: payload.Description,
		Status:      models.AbsenceStatusPending,
	}
	if payload.Image != "" {
		objectKey, err := i.fileStorage.UploadProofImage(ctx, user.ID, payload.Image)
		if err != nil {
			return "", "", errors.Wrap(err, "failed to store proof image")
		}
		rec.ProofAttached = true
		rec.ProofImage = objectKey
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create absence request")
	}

	i.notifyCreated(ctx, user.GetFullName(), rec, payload.Image)
	return id, "", nil
}

// AttachProof uploads the document for an already submitted request.
func (i impl) AttachProof(ctx context.Context, requestID string, image string) (hMsg string, err error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "absence request not found", nil
	}
	objectKey, err := i.fileStorage.UploadProofImage(ctx, rec.UserID, image)
	if err != nil {
		return "", errors.Wrap(err, "failed to store proof image")
	}
	err = i.store.Update(requestID, map[string]interface{}{
		"proof_attached": true,
		"proof_image":    objectKey,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to update absence request")
	}

	userName := ""
	if rec.User != nil {
		userName = rec.User.GetFullName()
	}
	if i.notifier != nil {
		notifyErr := i.notifier.SendMessageWithImage(ctx,
			notification.BuildProofAttachedMessage(userName, rec.Reason), image)
		if notifyErr != nil {
			log.WithError(notifyErr).Warn("failed to notify chat about attached proof")
		}
	}
	return "", nil
}

func (i impl) Decide(requestID string, action models.AdminAction) (hMsg string, err error) {
	rec, err := i.store.GetByID(requestID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "absence request not found", nil
	}
	if rec.Status != models.AbsenceStatusPending {
		return "absence request is already resolved", nil
	}
	status := models.AbsenceStatusApproved
	if action == models.AdminActionReject {
		status = models.AbsenceStatusRejected
	}
	err = i.store.Update(requestID, map[string]interface{}{"status": status})
	if err != nil {
		return "", errors.Wrap(err, "failed to update absence request")
	}
	return "", nil
}

func (i impl) ListByUser(userID string) ([]absenceapimodels.AbsenceView, error) {
	list, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]absenceapimodels.AbsenceView, 0, len(list))
	for _, rec := range list {
		result = append(result, absenceapimodels.AbsenceConvert(rec))
	}
	return result, nil
}

func (i impl) ListAll() ([]absenceapimodels.AbsenceView, error) {
	list, err := i.store.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]absenceapimodels.AbsenceView, 0, len(list))
	for _, rec := range list {
		result = append(result, absenceapimodels.AbsenceConvert(rec))
	}
	return result, nil
}

// notifyCreated posts the new request to the chat webhook, with the proof
// image when one was submitted. Delivery failures are logged and swallowed.
func (i impl) notifyCreated(ctx context.Context, userName string, rec dbmodels.AbsenceRequest, image string) {
	if i.notifier == nil {
		return
	}
	message := notification.BuildAbsenceMessage(userName, rec.Reason, rec.Dates, rec.StartTime, rec.EndTime, rec.ProofAttached)
	var err error
	if rec.ProofAttached && image != "" {
		err = i.notifier.SendMessageWithImage(ctx, message, image)
	} else {
		err = i.notifier.SendMessage(ctx, message)
	}
	if err != nil {
		log.WithError(err).Warn("failed to notify chat about absence request")
	}
}
