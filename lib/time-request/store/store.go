package timerequeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TimeRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.TimeRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByUser(userID string) (list []dbmodels.TimeRequest, err error)
	ListPending() (list []dbmodels.TimeRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TimeRequest) (id string, err error) {
	err = i.db.
		Omit("User", "Holiday").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TimeRequest, error) {
	rec := dbmodels.TimeRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("User").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.TimeRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.TimeRequest, err error) {
	list = []dbmodels.TimeRequest{}
	err = i.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListPending() (list []dbmodels.TimeRequest, err error) {
	list = []dbmodels.TimeRequest{}
	err = i.db.
		Where("status = ?", models.TimeRequestStatusPending).
		Order("created_at ASC").
		Preload("User").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
