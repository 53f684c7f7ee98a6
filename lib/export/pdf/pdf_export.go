package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	overtimeapimodels "page-control-backend/models/api/overtime"
	dbmodels "page-control-backend/models/db"
)

type StatementData struct {
	UserName string
	Holiday  dbmodels.Holiday
	Records  []dbmodels.OvertimeRecord
	Summary  overtimeapimodels.SummaryView
}

// GenerateStatement renders a per-user hour statement for one holiday.
func GenerateStatement(data StatementData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateStatement panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.Cell(0, 10, "Overtime statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Employee: %v", data.UserName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Holiday: %v (%v)", data.Holiday.Name, data.Holiday.Date.Format("02.01.2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	colWidths := []float64{45, 25, 30, 60, 30}
	headers := []string{"Entry type", "Hours", "Status", "Task", "Submitted"}
	for idx, h := range headers {
		pdf.CellFormat(colWidths[idx], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range data.Records {
		label := rec.OptionLabel
		if label == "" {
			label = string(rec.EffectiveKind())
		}
		pdf.CellFormat(colWidths[0], 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%.1f", rec.Hours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, string(rec.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, truncate(rec.Task, 40), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, rec.CreatedAt.Format("02.01.2006"), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Registered: %.1f of %.1f hours (%d%%)",
		data.Summary.Registered, data.Summary.Total, data.Summary.Percentage))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Hour bank: %.1f, holiday limit: %.1f",
		data.Summary.BankHours, data.Summary.OriginalTotal))

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
