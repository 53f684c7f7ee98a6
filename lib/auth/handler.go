package authhandler

import (
	"golang.org/x/crypto/bcrypt"

	"page-control-backend/db"
	usersstore "page-control-backend/lib/users/store"
	authutils "page-control-backend/lib/utils/auth-utils"
	authapimodels "page-control-backend/models/api/auth"
)

type Provider interface {
	Login(payload authapimodels.LoginRequest) (resp *authapimodels.LoginResponse, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(payload authapimodels.LoginRequest) (*authapimodels.LoginResponse, string, error) {
	user, err := i.usersStore.GetByEmail(payload.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "wrong e-mail or password", nil
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, "wrong e-mail or password", nil
	}
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return nil, "", err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &authapimodels.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "", nil
}
