package reconcileworker

import (
	"context"
	"fmt"
	"time"

	"page-control-backend/db"
	holidaystore "page-control-backend/lib/holiday/store"
	hourbankstore "page-control-backend/lib/hour-bank/store"
	overtimestore "page-control-backend/lib/overtime/store"
	baseworker "page-control-backend/lib/utils/base-worker"
	"page-control-backend/lib/utils/helpers"
	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

// The approval path writes compensation and overtime rows in one transaction,
// but rows created by older writers could be split by a crash between the two
// calls. The sweep finds approved compensations without a matching bank
// record and repairs them.
func StartWorker(ctx context.Context) {
	worker := impl{
		BaseImpl:          *baseworker.NewInstance("hour_bank_reconcile", time.Minute, time.Hour),
		compensationStore: hourbankstore.NewInstance(db.DB),
		overtimeStore:     overtimestore.NewInstance(db.DB),
		holidayStore:      holidaystore.NewInstance(db.DB),
	}
	go worker.Run(ctx, worker.reconcile)
}

type impl struct {
	baseworker.BaseImpl
	compensationStore hourbankstore.Provider
	overtimeStore     overtimestore.Provider
	holidayStore      holidaystore.Provider
}

func (i impl) reconcile(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.compensationStore.ListApproved()
	if err != nil {
		logger.WithError(err).Error("failed to list approved compensations")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		// pair-level check: one approved compensation per user/holiday is the
		// practical shape of the data, duplicates are left to manual review
		exists, err := i.overtimeStore.ExistsBankRecord(rec.UserID, rec.HolidayID, models.RecordKindAiBank)
		if err != nil {
			logger.WithError(err).Error("failed to check for a matching bank record")
			continue
		}
		if exists {
			continue
		}
		if err = i.repair(rec); err != nil {
			logger.
				WithField("compensation_id", rec.ID).
				WithError(err).
				Error("failed to repair compensation without a bank record")
			continue
		}
		logger.
			WithField("compensation_id", rec.ID).
			Info("restored missing bank record for approved compensation")
	}
}

func (i impl) repair(rec dbmodels.HourBankCompensation) error {
	holiday, err := i.holidayStore.GetByID(rec.HolidayID)
	if err != nil {
		return err
	}
	record := dbmodels.OvertimeRecord{
		UserID:      rec.UserID,
		HolidayID:   rec.HolidayID,
		Kind:        models.RecordKindAiBank,
		OptionID:    models.OptionIDAiBankHours,
		OptionLabel: "Hour bank (automatic analysis)",
		Hours:       rec.DetectedHours,
		Task:        fmt.Sprintf("Hour bank compensation restored by reconciliation, %.1f hours detected", rec.DetectedHours),
		Status:      models.RecordStatusApproved,
	}
	if holiday != nil {
		record.HolidayName = holiday.Name
		record.HolidayDate = holiday.Date
	}
	_, err = i.overtimeStore.Create(record)
	return err
}
