package absencestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AbsenceRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.AbsenceRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByUser(userID string) (list []dbmodels.AbsenceRequest, err error)
	ListAll() (list []dbmodels.AbsenceRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AbsenceRequest) (id string, err error) {
	err = i.db.
		Omit("User").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.AbsenceRequest, error) {
	rec := dbmodels.AbsenceRequest{}
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
		Model(&dbmodels.AbsenceRequest{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.AbsenceRequest, err error) {
	list = []dbmodels.AbsenceRequest{}
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

func (i impl) ListAll() (list []dbmodels.AbsenceRequest, err error) {
	list = []dbmodels.AbsenceRequest{}
	err = i.db.
		Order("created_at DESC").
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
