package notification

import (
	"fmt"
	"sort"
	"strings"

	"page-control-backend/models"
)

// BuildAbsenceMessage renders the chat message for a new absence request.
// Dates are sorted to derive the start/end range.
func BuildAbsenceMessage(userName string, reason models.AbsenceReason, dates []string, startTime, endTime string, proofAttached bool) string {
	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("New absence request\n")
	b.WriteString(fmt.Sprintf("Employee: %v\n", userName))
	b.WriteString(fmt.Sprintf("Reason: %v\n", reason.ToHuman()))
	switch len(sorted) {
	case 0:
	case 1:
		b.WriteString(fmt.Sprintf("Date: %v\n", sorted[0]))
	default:
		b.WriteString(fmt.Sprintf("Period: %v - %v (%v days)\n", sorted[0], sorted[len(sorted)-1], len(sorted)))
	}
	if startTime != "" && endTime != "" {
		b.WriteString(fmt.Sprintf("Time: %v - %v\n", startTime, endTime))
	}
	if proofAttached {
		b.WriteString("Proof document attached\n")
	} else {
		b.WriteString("No proof attached\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildProofAttachedMessage renders the follow-up message sent when a proof
// image is attached to an existing request.
func BuildProofAttachedMessage(userName string, reason models.AbsenceReason) string {
	return fmt.Sprintf("Proof attached\nEmployee: %v\nReason: %v", userName, reason.ToHuman())
}

// BuildDecisionMessage renders the admin decision notice for a bank-hours
// record.
func BuildDecisionMessage(userName, holidayName string, hours float64, approved bool) string {
	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	return fmt.Sprintf("Hour bank request %v\nEmployee: %v\nHoliday: %v\nHours: %.1f", verdict, userName, holidayName, hours)
}
