package houraccounting

import (
	"math"

	dbmodels "page-control-backend/models/db"
)

// Summary is the derived usage of a (user, holiday) pair. Recomputed from the
// raw records on every read, never persisted.
type Summary struct {
	Registered    float64 // approved normal hours
	Total         float64 // maxHours minus approved bank hours, floored at 0
	BankHours     float64
	OriginalTotal float64
	Percentage    int
}

// Calculate partitions the user's records for the holiday into bank and
// normal entries and derives the remaining-hours summary. Records count only
// while approved; rows with an empty status predate the status column and
// count as approved.
func Calculate(records []dbmodels.OvertimeRecord, holidayID string, maxHours float64) Summary {
	var bankHours, normalHours float64
	for _, rec := range records {
		if rec.HolidayID != holidayID {
			continue
		}
		if !rec.Status.CountsTowardTotals() {
			continue
		}
		if rec.EffectiveKind().IsBank() {
			bankHours += rec.Hours
		} else {
			normalHours += rec.Hours
		}
	}

	effectiveMax := maxHours - bankHours
	if effectiveMax < 0 {
		effectiveMax = 0
	}

	percentage := 100
	if effectiveMax > 0 {
		percentage = int(math.Round(normalHours / effectiveMax * 100))
		if percentage > 100 {
			percentage = 100
		}
	}

	return Summary{
		Registered:    normalHours,
		Total:         effectiveMax,
		BankHours:     bankHours,
		OriginalTotal: maxHours,
		Percentage:    percentage,
	}
}
