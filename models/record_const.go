package models

// RecordKind marks what an overtime record represents. The legacy rows only
// carried the option_id sentinel strings, so reads fall back to them.
type RecordKind string

const (
	RecordKindNormal     RecordKind = "normal"
	RecordKindManualBank RecordKind = "manual_bank"
	RecordKindAiBank     RecordKind = "ai_bank"
)

const (
	OptionIDManualBankHours = "manual_bank_hours"
	OptionIDAiBankHours     = "ai_bank_hours"
)

func (k RecordKind) IsBank() bool {
	return k == RecordKindManualBank || k == RecordKindAiBank
}

// KindFromOptionID maps the sentinel option_id strings of legacy rows.
func KindFromOptionID(optionID string) RecordKind {
	switch optionID {
	case OptionIDManualBankHours:
		return RecordKindManualBank
	case OptionIDAiBankHours:
		return RecordKindAiBank
	}
	return RecordKindNormal
}

func (k RecordKind) OptionID() string {
	switch k {
	case RecordKindManualBank:
		return OptionIDManualBankHours
	case RecordKindAiBank:
		return OptionIDAiBankHours
	}
	return ""
}

type RecordStatus string

const (
	RecordStatusApproved      RecordStatus = "approved"
	RecordStatusPendingAdmin  RecordStatus = "pending_admin"
	RecordStatusRejectedAdmin RecordStatus = "rejected_admin"
)

// CountsTowardTotals keeps the legacy rule: rows created before the status
// column exists have an empty status and count as approved.
func (s RecordStatus) CountsTowardTotals() bool {
	return s == RecordStatusApproved || s == ""
}

type CompensationStatus string

const (
	CompensationStatusPending  CompensationStatus = "pending"
	CompensationStatusApproved CompensationStatus = "approved"
	CompensationStatusRejected CompensationStatus = "rejected"
)

func (s CompensationStatus) Valid() bool {
	switch s {
	case CompensationStatusPending, CompensationStatusApproved, CompensationStatusRejected:
		return true
	}
	return false
}

type AdminAction string

const (
	AdminActionApprove AdminAction = "approve"
	AdminActionReject  AdminAction = "reject"
)

func (a AdminAction) Valid() bool {
	return a == AdminActionApprove || a == AdminActionReject
}

type TimeRequestType string

const (
	TimeRequestMissingEntry TimeRequestType = "missing_entry"
	TimeRequestMissingExit  TimeRequestType = "missing_exit"
)

func (t TimeRequestType) Valid() bool {
	return t == TimeRequestMissingEntry || t == TimeRequestMissingExit
}

type TimeRequestStatus string

const (
	TimeRequestStatusPending  TimeRequestStatus = "pending"
	TimeRequestStatusApproved TimeRequestStatus = "approved"
	TimeRequestStatusRejected TimeRequestStatus = "rejected"
)
