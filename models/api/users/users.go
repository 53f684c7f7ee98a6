package usersapimodels

import (
	"github.com/pkg/errors"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type ProfilePictureRequest struct {
	Image string `json:"image"` // data URI or raw base64
}

func (r ProfilePictureRequest) Validate() error {
	if r.Image == "" {
		return errors.New("image is required")
	}
	return nil
}

type UserView struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Role           models.UserRole  `json:"role"`
	Shift          models.WorkShift `json:"shift"`
	ProfilePicture string           `json:"profile_picture,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:             rec.ID,
		FirstName:      rec.FirstName,
		LastName:       rec.LastName,
		Email:          rec.Email,
		Role:           rec.Role,
		Shift:          rec.Shift,
		ProfilePicture: rec.ProfilePicture,
	}
}
