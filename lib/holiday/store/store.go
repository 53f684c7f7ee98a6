package holidaystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Holiday) (id string, err error)
	GetByID(id string) (rec *dbmodels.Holiday, err error)
	Update(id string, updMap map[string]interface{}) error
	List(activeOnly bool) (list []dbmodels.Holiday, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Holiday) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Holiday, error) {
	rec := dbmodels.Holiday{}
	err := i.db.
		Where("id = ?", id).
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
		Model(&dbmodels.Holiday{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(activeOnly bool) (list []dbmodels.Holiday, err error) {
	list = []dbmodels.Holiday{}
	tx := i.db.
		Order("date ASC")
	if activeOnly {
		tx = tx.Where("active = ?", true)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
