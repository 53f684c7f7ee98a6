package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "page-control-backend/models/db"
)

type Provider interface {
	ExportOvertimeRecords(list []dbmodels.OvertimeRecord) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var overtimeHeaders = []string{"Employee", "Holiday", "Holiday date", "Entry type", "Hours", "Time", "Task", "Status", "Submitted"}

func (i impl) ExportOvertimeRecords(list []dbmodels.OvertimeRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, overtimeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeOvertimeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Overtime records")
	return f.WriteToBuffer()
}

func writeOvertimeData(f *excelize.File, sheet string, list []dbmodels.OvertimeRecord, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(overtimeHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Employee"
		col := 1
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Holiday"
		col++
		if err := writeColumn(f, sheet, col, row, item.HolidayName); err != nil {
			return row, err
		}

		// "Holiday date"
		col++
		if !item.HolidayDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.HolidayDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Entry type"
		col++
		label := item.OptionLabel
		if label == "" {
			label = string(item.EffectiveKind())
		}
		if err := writeColumn(f, sheet, col, row, label); err != nil {
			return row, err
		}

		// "Hours"
		col++
		if err := writeColumn(f, sheet, col, row, item.Hours); err != nil {
			return row, err
		}

		// "Time"
		col++
		if item.StartTime != "" && item.EndTime != "" {
			if err := writeColumn(f, sheet, col, row, item.StartTime+" - "+item.EndTime); err != nil {
				return row, err
			}
		}

		// "Task"
		col++
		if err := writeColumn(f, sheet, col, row, item.Task); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "Submitted"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
