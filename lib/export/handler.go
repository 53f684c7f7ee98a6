package exporthandler

import (
	"bytes"

	"github.com/pkg/errors"

	"page-control-backend/db"
	pdfexport "page-control-backend/lib/export/pdf"
	xlsexport "page-control-backend/lib/export/xls"
	holidaystore "page-control-backend/lib/holiday/store"
	houraccounting "page-control-backend/lib/hour-accounting"
	overtimestore "page-control-backend/lib/overtime/store"
	usersstore "page-control-backend/lib/users/store"
	overtimeapimodels "page-control-backend/models/api/overtime"
)

type Provider interface {
	OvertimeXLS() (*bytes.Buffer, error)
	Statement(userID, holidayID string) (pdfFile []byte, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:    usersstore.NewInstance(db.DB),
		holidayStore:  holidaystore.NewInstance(db.DB),
		overtimeStore: overtimestore.NewInstance(db.DB),
		xls:           xlsexport.Instance,
	}
}

type impl struct {
	usersStore    usersstore.Provider
	holidayStore  holidaystore.Provider
	overtimeStore overtimestore.Provider
	xls           xlsexport.Provider
}

func (i impl) OvertimeXLS() (*bytes.Buffer, error) {
	list, err := i.overtimeStore.ListAll()
	if err != nil {
		return nil, err
	}
	return i.xls.ExportOvertimeRecords(list)
}

func (i impl) Statement(userID, holidayID string) ([]byte, string, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "user not found", nil
	}
	holiday, err := i.holidayStore.GetByID(holidayID)
	if err != nil {
		return nil, "", err
	}
	if holiday == nil {
		return nil, "holiday not found", nil
	}
	records, err := i.overtimeStore.ListByUserAndHoliday(userID, holidayID)
	if err != nil {
		return nil, "", err
	}
	summary := houraccounting.Calculate(records, holidayID, holiday.MaxHours)

	pdfFile, err := pdfexport.GenerateStatement(pdfexport.StatementData{
		UserName: user.GetFullName(),
		Holiday:  *holiday,
		Records:  records,
		Summary: overtimeapimodels.SummaryView{
			Registered:    summary.Registered,
			Total:         summary.Total,
			BankHours:     summary.BankHours,
			OriginalTotal: summary.OriginalTotal,
			Percentage:    summary.Percentage,
		},
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate statement")
	}
	return pdfFile, "", nil
}
