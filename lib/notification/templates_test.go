package notification

import (
	"testing"

	"github.com/stretchr/testify/require"

	"page-control-backend/models"
)

func TestBuildAbsenceMessage(t *testing.T) {
	t.Run(`single date with times`, func(t *testing.T) {
		msg := BuildAbsenceMessage("Jane Doe", models.AbsenceReasonMedical,
			[]string{"2026-03-10"}, "09:00", "12:00", true)
		require.Contains(t, msg, "Employee: Jane Doe")
		require.Contains(t, msg, "Reason: Medical appointment")
		require.Contains(t, msg, "Date: 2026-03-10")
		require.Contains(t, msg, "Time: 09:00 - 12:00")
		require.Contains(t, msg, "Proof document attached")
		require.NotContains(t, msg, "Period:")
	})

	t.Run(`multiple dates are sorted into a period`, func(t *testing.T) {
		msg := BuildAbsenceMessage("Jane Doe", models.AbsenceReasonSick,
			[]string{"2026-03-12", "2026-03-10", "2026-03-11"}, "", "", false)
		require.Contains(t, msg, "Period: 2026-03-10 - 2026-03-12 (3 days)")
		require.Contains(t, msg, "No proof attached")
		require.NotContains(t, msg, "Time:")
	})

	t.Run(`unknown reason falls back to its raw value`, func(t *testing.T) {
		msg := BuildAbsenceMessage("Jane Doe", models.AbsenceReason("jury_duty"),
			[]string{"2026-03-10"}, "", "", false)
		require.Contains(t, msg, "Reason: jury_duty")
	})
}

func TestBuildDecisionMessage(t *testing.T) {
	t.Run(`approved`, func(t *testing.T) {
		msg := BuildDecisionMessage("Jane Doe", "New Year", 2.5, true)
		require.Contains(t, msg, "Hour bank request approved")
		require.Contains(t, msg, "Holiday: New Year")
		require.Contains(t, msg, "Hours: 2.5")
	})

	t.Run(`rejected`, func(t *testing.T) {
		msg := BuildDecisionMessage("Jane Doe", "New Year", 2, false)
		require.Contains(t, msg, "Hour bank request rejected")
	})
}
