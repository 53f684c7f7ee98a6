package overtimehandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"page-control-backend/db"
	holidaystore "page-control-backend/lib/holiday/store"
	houraccounting "page-control-backend/lib/hour-accounting"
	overtimestore "page-control-backend/lib/overtime/store"
	statscache "page-control-backend/lib/stats-cache"
	usersstore "page-control-backend/lib/users/store"
	"page-control-backend/models"
	overtimeapimodels "page-control-backend/models/api/overtime"
	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, payload overtimeapimodels.CreateRequest) (recordID string, hMsg string, err error)
	ListByUser(userID string) ([]overtimeapimodels.RecordView, error)
	ListAll() ([]overtimeapimodels.RecordView, error)
	Delete(ctx context.Context, recordID string) (hMsg string, err error)
	Summary(ctx context.Context, userID, holidayID string) (overtimeapimodels.SummaryView, string, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:    usersstore.NewInstance(db.DB),
		holidayStore:  holidaystore.NewInstance(db.DB),
		overtimeStore: overtimestore.NewInstance(db.DB),
		cache:         statscache.Instance,
	}
}

type impl struct {
	usersStore    usersstore.Provider
	holidayStore  holidaystore.Provider
	overtimeStore overtimestore.Provider
	cache         statscache.Provider
}

// Create handles the direct overtime flow. Records land approved, the
// pending_admin state only exists for hour-bank submissions.
func (i impl) Create(ctx context.Context, payload overtimeapimodels.CreateRequest) (recordID string, hMsg string, err error) {
	user, err := i.usersStore.GetByID(payload.UserID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "user not found", nil
	}
	holiday, err := i.holidayStore.GetByID(payload.HolidayID)
	if err != nil {
		return "", "", err
	}
	if holiday == nil {
		return "", "holiday not found", nil
	}

	rec := dbmodels.OvertimeRecord{
		UserID:      user.ID,
		HolidayID:   holiday.ID,
		HolidayName: holiday.Name,
		HolidayDate: holiday.Date,
		Kind:        models.RecordKindNormal,
		OptionID:    payload.OptionID,
		OptionLabel: payload.OptionLabel,
		Hours:       payload.Hours,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Task:        payload.Task,
		Status:      models.RecordStatusApproved,
	}
	recordID, err = i.overtimeStore.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create overtime record")
	}
	i.invalidateSummary(ctx, user.ID, holiday.ID)
	return recordID, "", nil
}

func (i impl) ListByUser(userID string) ([]overtimeapimodels.RecordView, error) {
	list, err := i.overtimeStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]overtimeapimodels.RecordView, 0, len(list))
	for _, rec := range list {
		result = append(result, overtimeapimodels.RecordConvert(rec))
	}
	return result, nil
}

func (i impl) ListAll() ([]overtimeapimodels.RecordView, error) {
	list, err := i.overtimeStore.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]overtimeapimodels.RecordView, 0, len(list))
	for _, rec := range list {
		result = append(result, overtimeapimodels.RecordConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(ctx context.Context, recordID string) (hMsg string, err error) {
	rec, err := i.overtimeStore.GetByID(recordID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "record not found", nil
	}
	if err = i.overtimeStore.Delete(recordID); err != nil {
		return "", errors.Wrap(err, "failed to delete overtime record")
	}
	i.invalidateSummary(ctx, rec.UserID, rec.HolidayID)
	return "", nil
}

// Summary recomputes the usage numbers from the raw records; the cache only
// shortcuts repeated dashboard reads inside its TTL.
func (i impl) Summary(ctx context.Context, userID, holidayID string) (view overtimeapimodels.SummaryView, hMsg string, err error) {
	if i.cache != nil {
		found, err := i.cache.Get(ctx, statscache.SummaryKey(userID, holidayID), &view)
		if err != nil {
			log.WithError(err).Warn("stats cache read failed")
		} else if found {
			return view, "", nil
		}
	}

	holiday, err := i.holidayStore.GetByID(holidayID)
	if err != nil {
		return view, "", err
	}
	if holiday == nil {
		return view, "holiday not found", nil
	}
	records, err := i.overtimeStore.ListByUserAndHoliday(userID, holidayID)
	if err != nil {
		return view, "", err
	}

	summary := houraccounting.Calculate(records, holidayID, holiday.MaxHours)
	view = overtimeapimodels.SummaryView{
		Registered:    summary.Registered,
		Total:         summary.Total,
		BankHours:     summary.BankHours,
		OriginalTotal: summary.OriginalTotal,
		Percentage:    summary.Percentage,
	}

	if i.cache != nil {
		if err := i.cache.Set(ctx, statscache.SummaryKey(userID, holidayID), view); err != nil {
			log.WithError(err).Warn("stats cache write failed")
		}
	}
	return view, "", nil
}

func (i impl) invalidateSummary(ctx context.Context, userID, holidayID string) {
	if i.cache == nil {
		return
	}
	if err := i.cache.Invalidate(ctx, statscache.SummaryKey(userID, holidayID)); err != nil {
		log.WithError(err).Warn("failed to invalidate stats cache")
	}
}
