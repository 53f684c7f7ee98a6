package models

type AbsenceReason string

const (
	AbsenceReasonSick     AbsenceReason = "sick"
	AbsenceReasonMedical  AbsenceReason = "medical"
	AbsenceReasonPersonal AbsenceReason = "personal"
	AbsenceReasonFamily   AbsenceReason = "family"
	AbsenceReasonOther    AbsenceReason = "other"
)

var absenceReasonHumanName = map[AbsenceReason]string{
	AbsenceReasonSick:     "Sick leave",
	AbsenceReasonMedical:  "Medical appointment",
	AbsenceReasonPersonal: "Personal matter",
	AbsenceReasonFamily:   "Family emergency",
	AbsenceReasonOther:    "Other",
}

func (r AbsenceReason) ToHuman() string {
	if human, exist := absenceReasonHumanName[r]; exist {
		return human
	}
	return string(r)
}

type AbsenceStatus string

const (
	AbsenceStatusPending  AbsenceStatus = "pending"
	AbsenceStatusApproved AbsenceStatus = "approved"
	AbsenceStatusRejected AbsenceStatus = "rejected"
)
