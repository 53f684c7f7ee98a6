package holidayhandler

import (
	"page-control-backend/db"
	holidaystore "page-control-backend/lib/holiday/store"
	holidayapimodels "page-control-backend/models/api/holiday"
	dbmodels "page-control-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(payload holidayapimodels.CreateRequest) (id string, err error)
	Get(id string) (*holidayapimodels.HolidayView, error)
	List(activeOnly bool) ([]holidayapimodels.HolidayView, error)
	SetActive(id string, active bool) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: holidaystore.NewInstance(db.DB),
	}
}

type impl struct {
	store holidaystore.Provider
}

func (i impl) Create(payload holidayapimodels.CreateRequest) (id string, err error) {
	deadline := payload.Deadline
	if deadline.IsZero() {
		deadline = payload.Date
	}
	id, err = i.store.Create(dbmodels.Holiday{
		Name:     payload.Name,
		Date:     payload.Date,
		Deadline: deadline,
		MaxHours: payload.MaxHours,
		Active:   true,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to create holiday")
	}
	return id, nil
}

func (i impl) Get(id string) (*holidayapimodels.HolidayView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := holidayapimodels.HolidayConvert(*rec)
	return &view, nil
}

func (i impl) List(activeOnly bool) ([]holidayapimodels.HolidayView, error) {
	list, err := i.store.List(activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]holidayapimodels.HolidayView, 0, len(list))
	for _, rec := range list {
		result = append(result, holidayapimodels.HolidayConvert(rec))
	}
	return result, nil
}

func (i impl) SetActive(id string, active bool) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "holiday not found", nil
	}
	err = i.store.Update(id, map[string]interface{}{"active": active})
	if err != nil {
		return "", errors.Wrap(err, "failed to update holiday")
	}
	return "", nil
}
