package hourbankstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.HourBankCompensation) (id string, err error)
	GetByID(id string) (rec *dbmodels.HourBankCompensation, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByUser(userID string) (list []dbmodels.HourBankCompensation, err error)
	ListAll() (list []dbmodels.HourBankCompensation, err error)
	ListApproved() (list []dbmodels.HourBankCompensation, err error)
	SumDetectedHours(userID, holidayID string) (total float64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HourBankCompensation) (id string, err error) {
	err = i.db.
		Omit("User", "Holiday").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.HourBankCompensation, error) {
	rec := dbmodels.HourBankCompensation{}
	err := i.db.
		Where("id = ?", id).
		Preload("User").
		Preload("Holiday").
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
		Model(&dbmodels.HourBankCompensation{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.HourBankCompensation, err error) {
	list = []dbmodels.HourBankCompensation{}
	err = i.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Holiday").
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

func (i impl) ListAll() (list []dbmodels.HourBankCompensation, err error) {
	list = []dbmodels.HourBankCompensation{}
	err = i.db.
		Order("created_at DESC").
		Preload("User").
		Preload("Holiday").
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

func (i impl) ListApproved() (list []dbmodels.HourBankCompensation, err error) {
	list = []dbmodels.HourBankCompensation{}
	err = i.db.
		Where("status = ?", models.CompensationStatusApproved).
		Order("created_at ASC").
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

func (i impl) SumDetectedHours(userID, holidayID string) (total float64, err error) {
	err = i.db.
		Model(&dbmodels.HourBankCompensation{}).
		Select("COALESCE(SUM(detected_hours), 0)").
		Where("user_id = ?", userID).
		Where("holiday_id = ?", holidayID).
		Where("status = ?", models.CompensationStatusApproved).
		Scan(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
