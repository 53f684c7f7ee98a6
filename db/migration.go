package db

import (
	"github.com/pkg/errors"

	dbmodels "page-control-backend/models/db"
)

func AutoMigrateDB() error {
	err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
	if err != nil {
		return errors.Wrap(err, "failed to create uuid-ossp extension")
	}
	err = DB.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Holiday{},
		&dbmodels.OvertimeRecord{},
		&dbmodels.HourBankCompensation{},
		&dbmodels.TimeRequest{},
		&dbmodels.AbsenceRequest{},
	)
	if err != nil {
		return errors.Wrap(err, "migration failed")
	}
	return nil
}
