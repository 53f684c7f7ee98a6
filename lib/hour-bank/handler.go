package hourbankhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"page-control-backend/config"
	"page-control-backend/db"
	filestorage "page-control-backend/lib/file-storage"
	holidaystore "page-control-backend/lib/holiday/store"
	hourbankstore "page-control-backend/lib/hour-bank/store"
	"page-control-backend/lib/notification"
	overtimestore "page-control-backend/lib/overtime/store"
	proofanalysis "page-control-backend/lib/proof-analysis"
	"page-control-backend/lib/smtp"
	statscache "page-control-backend/lib/stats-cache"
	usersstore "page-control-backend/lib/users/store"
	"page-control-backend/models"
	hourbankapimodels "page-control-backend/models/api/hourbank"
	overtimeapimodels "page-control-backend/models/api/overtime"
	dbmodels "page-control-backend/models/db"
)

// ErrRecordNotFound distinguishes a missing target row (404) from the
// hMsg-style state/lookup failures (400).
var ErrRecordNotFound = errors.New("record not found")

type Provider interface {
	SubmitManual(ctx context.Context, payload hourbankapimodels.ManualSubmitRequest) (recordID string, hMsg string, err error)
	SubmitAnalyzed(ctx context.Context, payload hourbankapimodels.AnalyzeSubmitRequest) (view hourbankapimodels.CompensationView, hMsg string, err error)
	ProcessApproval(ctx context.Context, payload hourbankapimodels.ProcessApprovalRequest) (compensationID string, hMsg string, err error)
	AdminDecision(ctx context.Context, payload hourbankapimodels.AdminApprovalRequest) (hMsg string, err error)
	PendingApprovals() ([]overtimeapimodels.RecordView, error)
	UserCompensations(userID string) ([]hourbankapimodels.CompensationView, error)
	AllCompensations() ([]hourbankapimodels.CompensationView, error)
	UserHours(userID, holidayID string) (hourbankapimodels.UserHoursView, error)
	PatchCompensation(ctx context.Context, id string, payload hourbankapimodels.CompensationPatchRequest) (hMsg string, err error)
}

var Instance Provider

// txStores groups the stores that must share the approval transaction.
type txStores struct {
	compensations hourbankstore.Provider
	records       overtimestore.Provider
}

func NewHandler() {
	gormDB := db.DB
	Instance = impl{
		inTx: func(fn func(s txStores) error) error {
			return gormDB.Transaction(func(tx *gorm.DB) error {
				return fn(txStores{
					compensations: hourbankstore.NewInstance(tx),
					records:       overtimestore.NewInstance(tx),
				})
			})
		},
		usersStore:        usersstore.NewInstance(gormDB),
		holidayStore:      holidaystore.NewInstance(gormDB),
		overtimeStore:     overtimestore.NewInstance(gormDB),
		compensationStore: hourbankstore.NewInstance(gormDB),
		fileStorage:       filestorage.Instance,
		analyzer:          proofanalysis.Instance,
		notifier:          notification.Instance,
		mailer:            smtp.Instance,
		cache:             statscache.Instance,
	}
}

type impl struct {
	inTx              func(fn func(s txStores) error) error
	usersStore        usersstore.Provider
	holidayStore      holidaystore.Provider
	overtimeStore     overtimestore.Provider
	compensationStore hourbankstore.Provider
	fileStorage       filestorage.Provider
	analyzer          proofanalysis.Provider
	notifier          notification.Provider
	mailer            smtp.Provider
	cache             statscache.Provider
}

func (i impl) GetLogger(userID, holidayID string) *log.Entry {
	logger := log.
		WithField("user_id", userID).
		WithField("holiday_id", holidayID)
	return logger
}

// SubmitManual stores the proof image and creates a pending_admin bank
// record. No compensation row exists for the manual path until an admin acts.
func (i impl) SubmitManual(ctx context.Context, payload hourbankapimodels.ManualSubmitRequest) (recordID string, hMsg string, err error) {
	user, holiday, hMsg, err := i.resolvePair(payload.UserID, payload.HolidayID)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}

	proofKey, err := i.fileStorage.UploadProofImage(ctx, user.ID, payload.Image)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to store proof image")
	}

	rec := dbmodels.OvertimeRecord{
		UserID:      user.ID,
		HolidayID:   holiday.ID,
		HolidayName: holiday.Name,
		HolidayDate: holiday.Date,
		Kind:        models.RecordKindManualBank,
		OptionID:    models.OptionIDManualBankHours,
		OptionLabel: "Hour bank (manual proof)",
		Hours:       payload.DeclaredHours,
		Task:        fmt.Sprintf("Hour bank compensation, %.1f hours declared, awaiting review", payload.DeclaredHours),
		Status:      models.RecordStatusPendingAdmin,
		ProofImage:  proofKey,
	}
	recordID, err = i.overtimeStore.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create bank-hours record")
	}
	i.GetLogger(user.ID, holiday.ID).
		WithField("record_id", recordID).
		Info("manual bank-hours submission stored")
	return recordID, "", nil
}

// SubmitAnalyzed runs the proof through the analysis adapter and feeds the
// verdict into the shared approval-processing path.
func (i impl) SubmitAnalyzed(ctx context.Context, payload hourbankapimodels.AnalyzeSubmitRequest) (view hourbankapimodels.CompensationView, hMsg string, err error) {
	result, err := i.analyzer.Analyze(ctx, payload.DeclaredHours, payload.Image)
	if err != nil {
		return view, "", errors.Wrap(err, "proof analysis failed")
	}

	compensationID, hMsg, err := i.ProcessApproval(ctx, hourbankapimodels.ProcessApprovalRequest{
		UserID:        payload.UserID,
		HolidayID:     payload.HolidayID,
		DeclaredHours: payload.DeclaredHours,
		DetectedHours: &result.DetectedHours,
		Confidence:    result.Confidence,
		Reason:        result.Reason,
		Approved:      &result.Approved,
	})
	if err != nil || hMsg != "" {
		return view, hMsg, err
	}
	rec, err := i.compensationStore.GetByID(compensationID)
	if err != nil || rec == nil {
		return view, "", errors.Wrap(err, "failed to read back compensation")
	}
	return hourbankapimodels.CompensationConvert(*rec), "", nil
}

// ProcessApproval records the analysis outcome. The compensation row is
// written for every verdict; the overtime record only on approval, with the
// detected hours as the authoritative payout value. Both writes share one
// transaction.
func (i impl) ProcessApproval(ctx context.Context, payload hourbankapimodels.ProcessApprovalRequest) (compensationID string, hMsg string, err error) {
	user, holiday, hMsg, err := i.resolvePair(payload.UserID, payload.HolidayID)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}

	approved := *payload.Approved
	detectedHours := *payload.DetectedHours
	now := time.Now()

	status := models.CompensationStatusRejected
	if approved {
		status = models.CompensationStatusApproved
	}

	err = i.inTx(func(s txStores) error {
		// image bytes are intentionally not persisted on the compensation row
		compensationID, err = s.compensations.Create(dbmodels.HourBankCompensation{
			UserID:        user.ID,
			HolidayID:     holiday.ID,
			DeclaredHours: payload.DeclaredHours,
			DetectedHours: detectedHours,
			Confidence:    payload.Confidence,
			Status:        status,
			Reason:        payload.Reason,
			AnalyzedAt:    &now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create compensation")
		}
		if !approved {
			return nil
		}
		_, err = s.records.Create(dbmodels.OvertimeRecord{
			UserID:      user.ID,
			HolidayID:   holiday.ID,
			HolidayName: holiday.Name,
			HolidayDate: holiday.Date,
			Kind:        models.RecordKindAiBank,
			OptionID:    models.OptionIDAiBankHours,
			OptionLabel: "Hour bank (automatic analysis)",
			Hours:       detectedHours,
			Task:        fmt.Sprintf("Hour bank compensation approved automatically, %.1f hours detected (confidence %v%%)", detectedHours, payload.Confidence),
			Status:      models.RecordStatusApproved,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create bank-hours record")
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}

	i.invalidateSummary(ctx, user.ID, holiday.ID)
	i.notifyVerdict(ctx, *user, *holiday, detectedHours, approved, payload.Reason)
	return compensationID, "", nil
}

// AdminDecision transitions a pending bank record. A second call on an
// already-decided record fails the state check, which keeps double-processing
// out.
func (i impl) AdminDecision(ctx context.Context, payload hourbankapimodels.AdminApprovalRequest) (hMsg string, err error) {
	rec, err := i.overtimeStore.GetByID(payload.RecordID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrRecordNotFound
	}
	if !rec.EffectiveKind().IsBank() {
		return "record is not an hour-bank entry", nil
	}
	if rec.Status != models.RecordStatusPendingAdmin {
		return fmt.Sprintf("record is not awaiting review (status %v)", rec.Status), nil
	}

	newStatus := models.RecordStatusRejectedAdmin
	if payload.Action == models.AdminActionApprove {
		newStatus = models.RecordStatusApproved
	}
	err = i.overtimeStore.Update(rec.ID, map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to update record status")
	}
	i.GetLogger(rec.UserID, rec.HolidayID).
		WithField("record_id", rec.ID).
		WithField("admin_id", payload.AdminID).
		WithField("status", newStatus).
		Info("bank-hours record decided")

	i.invalidateSummary(ctx, rec.UserID, rec.HolidayID)
	if rec.User != nil && rec.Holiday != nil {
		i.notifyDecision(ctx, *rec.User, *rec.Holiday, rec.Hours, payload.Action == models.AdminActionApprove)
	}
	return "", nil
}

func (i impl) PendingApprovals() ([]overtimeapimodels.RecordView, error) {
	list, err := i.overtimeStore.ListPendingBank()
	if err != nil {
		return nil, err
	}
	result := make([]overtimeapimodels.RecordView, 0, len(list))
	for _, rec := range list {
		result = append(result, overtimeapimodels.RecordConvert(rec))
	}
	return result, nil
}

func (i impl) UserCompensations(userID string) ([]hourbankapimodels.CompensationView, error) {
	list, err := i.compensationStore.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]hourbankapimodels.CompensationView, 0, len(list))
	for _, rec := range list {
		result = append(result, hourbankapimodels.CompensationConvert(rec))
	}
	return result, nil
}

func (i impl) AllCompensations() ([]hourbankapimodels.CompensationView, error) {
	list, err := i.compensationStore.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]hourbankapimodels.CompensationView, 0, len(list))
	for _, rec := range list {
		result = append(result, hourbankapimodels.CompensationConvert(rec))
	}
	return result, nil
}

func (i impl) UserHours(userID, holidayID string) (hourbankapimodels.UserHoursView, error) {
	total, err := i.compensationStore.SumDetectedHours(userID, holidayID)
	if err != nil {
		return hourbankapimodels.UserHoursView{}, err
	}
	return hourbankapimodels.UserHoursView{
		UserID:        userID,
		HolidayID:     holidayID,
		DetectedHours: total,
	}, nil
}

func (i impl) PatchCompensation(ctx context.Context, id string, payload hourbankapimodels.CompensationPatchRequest) (hMsg string, err error) {
	rec, err := i.compensationStore.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrRecordNotFound
	}
	updMap := map[string]interface{}{
		"status": payload.Status,
	}
	if payload.Reason != "" {
		updMap["reason"] = payload.Reason
	}
	err = i.compensationStore.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "failed to update compensation")
	}
	i.invalidateSummary(ctx, rec.UserID, rec.HolidayID)
	return "", nil
}

func (i impl) resolvePair(userID, holidayID string) (*dbmodels.User, *dbmodels.Holiday, string, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, nil, "", err
	}
	if user == nil {
		return nil, nil, "user not found", nil
	}
	holiday, err := i.holidayStore.GetByID(holidayID)
	if err != nil {
		return nil, nil, "", err
	}
	if holiday == nil {
		return nil, nil, "holiday not found", nil
	}
	return user, holiday, "", nil
}

func (i impl) invalidateSummary(ctx context.Context, userID, holidayID string) {
	if i.cache == nil {
		return
	}
	if err := i.cache.Invalidate(ctx, statscache.SummaryKey(userID, holidayID)); err != nil {
		i.GetLogger(userID, holidayID).WithError(err).Warn("failed to invalidate stats cache")
	}
}

// notifyVerdict reports the automatic analysis outcome. Delivery failures are
// reported and swallowed, the primary action is already committed.
func (i impl) notifyVerdict(ctx context.Context, user dbmodels.User, holiday dbmodels.Holiday, hours float64, approved bool, reason string) {
	logger := i.GetLogger(user.ID, holiday.ID)
	if i.notifier != nil {
		msg := notification.BuildDecisionMessage(user.GetFullName(), holiday.Name, hours, approved)
		if err := i.notifier.SendMessage(ctx, msg); err != nil {
			logger.WithError(err).Error("failed to deliver verdict to chat webhook")
		}
	}
	if i.mailer != nil {
		subject := "Hour bank request rejected"
		if approved {
			subject = "Hour bank request approved"
		}
		body := fmt.Sprintf("Your hour bank request for %v was processed.\nHours: %.1f\nReason: %v", holiday.Name, hours, reason)
		if err := i.mailer.SendEMail(config.Conf.Smtp.Sender, user.Email, body, subject); err != nil {
			logger.WithError(err).Error("failed to send verdict e-mail")
		}
	}
}

func (i impl) notifyDecision(ctx context.Context, user dbmodels.User, holiday dbmodels.Holiday, hours float64, approved bool) {
	logger := i.GetLogger(user.ID, holiday.ID)
	if i.notifier != nil {
		msg := notification.BuildDecisionMessage(user.GetFullName(), holiday.Name, hours, approved)
		if err := i.notifier.SendMessage(ctx, msg); err != nil {
			logger.WithError(err).Error("failed to deliver decision to chat webhook")
		}
	}
	if i.mailer != nil {
		subject := "Hour bank request rejected"
		if approved {
			subject = "Hour bank request approved"
		}
		body := fmt.Sprintf("An administrator reviewed your hour bank request for %v.\nHours: %.1f", holiday.Name, hours)
		if err := i.mailer.SendEMail(config.Conf.Smtp.Sender, user.Email, body, subject); err != nil {
			logger.WithError(err).Error("failed to send decision e-mail")
		}
	}
}
