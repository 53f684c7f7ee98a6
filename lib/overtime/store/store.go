package overtimestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OvertimeRecord) (id string, err error)
	GetByID(id string) (rec *dbmodels.OvertimeRecord, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByUser(userID string) (list []dbmodels.OvertimeRecord, err error)
	ListByUserAndHoliday(userID, holidayID string) (list []dbmodels.OvertimeRecord, err error)
	ListPendingBank() (list []dbmodels.OvertimeRecord, err error)
	ListAll() (list []dbmodels.OvertimeRecord, err error)
	ExistsBankRecord(userID, holidayID string, kind models.RecordKind) (exists bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OvertimeRecord) (id string, err error) {
	err = i.db.
		Omit("User", "Holiday").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.OvertimeRecord, error) {
	rec := dbmodels.OvertimeRecord{}
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
		Model(&dbmodels.OvertimeRecord{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.OvertimeRecord{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.OvertimeRecord, err error) {
	list = []dbmodels.OvertimeRecord{}
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

func (i impl) ListByUserAndHoliday(userID, holidayID string) (list []dbmodels.OvertimeRecord, err error) {
	list = []dbmodels.OvertimeRecord{}
	err = i.db.
		Where("user_id = ?", userID).
		Where("holiday_id = ?", holidayID).
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

func (i impl) ListPendingBank() (list []dbmodels.OvertimeRecord, err error) {
	list = []dbmodels.OvertimeRecord{}
	err = i.db.
		Where("status = ?", models.RecordStatusPendingAdmin).
		Where("kind IN ? OR option_id IN ?",
			[]models.RecordKind{models.RecordKindManualBank, models.RecordKindAiBank},
			[]string{models.OptionIDManualBankHours, models.OptionIDAiBankHours}).
		Order("created_at ASC").
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

func (i impl) ListAll() (list []dbmodels.OvertimeRecord, err error) {
	list = []dbmodels.OvertimeRecord{}
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

func (i impl) ExistsBankRecord(userID, holidayID string, kind models.RecordKind) (exists bool, err error) {
	var count int64
	err = i.db.
		Model(&dbmodels.OvertimeRecord{}).
		Where("user_id = ?", userID).
		Where("holiday_id = ?", holidayID).
		Where("kind = ? OR option_id = ?", kind, kind.OptionID()).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
