package usershandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"page-control-backend/db"
	filestorage "page-control-backend/lib/file-storage"
	usersstore "page-control-backend/lib/users/store"
	usersapimodels "page-control-backend/models/api/users"
)

type Provider interface {
	Get(id string) (*usersapimodels.UserView, error)
	List() ([]usersapimodels.UserView, error)
	UpdateProfilePicture(ctx context.Context, userID string, image string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       usersstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
	}
}

type impl struct {
	store       usersstore.Provider
	fileStorage filestorage.Provider
}

func (i impl) Get(id string) (*usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := usersapimodels.UserConvert(*rec)
	return &view, nil
}

func (i impl) List() ([]usersapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i impl) UpdateProfilePicture(ctx context.Context, userID string, image string) (hMsg string, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "user not found", nil
	}
	objectKey, err := i.fileStorage.UploadProfilePicture(ctx, userID, image)
	if err != nil {
		return "", errors.Wrap(err, "failed to store profile picture")
	}
	err = i.store.Update(userID, map[string]interface{}{"profile_picture": objectKey})
	if err != nil {
		return "", errors.Wrap(err, "failed to update user")
	}
	log.
		WithField("user_id", userID).
		Info("profile picture updated")
	return "", nil
}
