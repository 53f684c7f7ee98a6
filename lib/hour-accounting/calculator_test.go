package houraccounting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"page-control-backend/models"
	dbmodels "page-control-backend/models/db"
)

const holidayID = "holiday-1"

func normalRecord(hours float64, status models.RecordStatus) dbmodels.OvertimeRecord {
	return dbmodels.OvertimeRecord{
		HolidayID: holidayID,
		Kind:      models.RecordKindNormal,
		Hours:     hours,
		Status:    status,
	}
}

func bankRecord(hours float64, kind models.RecordKind) dbmodels.OvertimeRecord {
	return dbmodels.OvertimeRecord{
		HolidayID: holidayID,
		Kind:      kind,
		OptionID:  kind.OptionID(),
		Hours:     hours,
		Status:    models.RecordStatusApproved,
	}
}

func TestCalculate(t *testing.T) {
	t.Run(`no records yields a zeroed summary with the full limit`, func(t *testing.T) {
		s := Calculate(nil, holidayID, 8)
		require.Equal(t, float64(0), s.Registered)
		require.Equal(t, float64(8), s.Total)
		require.Equal(t, float64(0), s.BankHours)
		require.Equal(t, float64(8), s.OriginalTotal)
		require.Equal(t, 0, s.Percentage)
	})

	t.Run(`two approved hours of eight give 25 percent`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(2, models.RecordStatusApproved),
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(2), s.Registered)
		require.Equal(t, float64(8), s.Total)
		require.Equal(t, 25, s.Percentage)
	})

	t.Run(`bank hours reduce the effective limit`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(3, models.RecordStatusApproved),
			bankRecord(2, models.RecordKindManualBank),
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(3), s.Registered)
		require.Equal(t, float64(6), s.Total)
		require.Equal(t, float64(2), s.BankHours)
		require.Equal(t, float64(8), s.OriginalTotal)
		require.Equal(t, 50, s.Percentage)
	})

	t.Run(`bank hours equal to the limit mean 100 percent`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			bankRecord(8, models.RecordKindAiBank),
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(0), s.Total)
		require.Equal(t, float64(8), s.BankHours)
		require.Equal(t, 100, s.Percentage)
	})

	t.Run(`bank hours beyond the limit floor the effective limit at zero`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			bankRecord(10, models.RecordKindManualBank),
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(0), s.Total)
		require.Equal(t, 100, s.Percentage)
	})

	t.Run(`pending and rejected records are excluded`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(2, models.RecordStatusApproved),
			normalRecord(5, models.RecordStatusRejectedAdmin),
			{
				HolidayID: holidayID,
				Kind:      models.RecordKindManualBank,
				Hours:     4,
				Status:    models.RecordStatusPendingAdmin,
			},
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(2), s.Registered)
		require.Equal(t, float64(0), s.BankHours)
		require.Equal(t, 25, s.Percentage)
	})

	t.Run(`rows with an empty status count as approved`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(4, ""),
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(4), s.Registered)
		require.Equal(t, 50, s.Percentage)
	})

	t.Run(`legacy rows without a kind are classified by option id`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			{
				HolidayID: holidayID,
				OptionID:  models.OptionIDAiBankHours,
				Hours:     2,
				Status:    models.RecordStatusApproved,
			},
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(2), s.BankHours)
		require.Equal(t, float64(6), s.Total)
	})

	t.Run(`records of other holidays are ignored`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(2, models.RecordStatusApproved),
			{
				HolidayID: "holiday-2",
				Kind:      models.RecordKindNormal,
				Hours:     6,
				Status:    models.RecordStatusApproved,
			},
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, float64(2), s.Registered)
	})

	t.Run(`percentage is capped at 100`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(12, models.RecordStatusApproved),
		}
		s := Calculate(records, holidayID, 8)
		require.Equal(t, 100, s.Percentage)
	})

	t.Run(`percentage is rounded to the nearest integer`, func(t *testing.T) {
		records := []dbmodels.OvertimeRecord{
			normalRecord(1, models.RecordStatusApproved),
		}
		// 1 of 3 hours is 33.33 percent
		s := Calculate(records, holidayID, 3)
		require.Equal(t, 33, s.Percentage)
	})
}
