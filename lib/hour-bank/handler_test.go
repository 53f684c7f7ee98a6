package hourbankhandler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"page-control-backend/models"
	analysisapimodels "page-control-backend/models/api/analysis"
	hourbankapimodels "page-control-backend/models/api/hourbank"
	dbmodels "page-control-backend/models/db"
)

type fakeUsersStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) { return rec.ID, nil }
func (f *fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	if rec, ok := f.users[id]; ok {
		return &rec, nil
	}
	return nil, nil
}
func (f *fakeUsersStore) GetByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeUsersStore) List() ([]dbmodels.User, error) { return nil, nil }

type fakeHolidayStore struct {
	holidays map[string]dbmodels.Holiday
}

func (f *fakeHolidayStore) Create(rec dbmodels.Holiday) (string, error) { return rec.ID, nil }
func (f *fakeHolidayStore) GetByID(id string) (*dbmodels.Holiday, error) {
	if rec, ok := f.holidays[id]; ok {
		return &rec, nil
	}
	return nil, nil
}
func (f *fakeHolidayStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeHolidayStore) List(activeOnly bool) ([]dbmodels.Holiday, error)      { return nil, nil }

type fakeOvertimeStore struct {
	seq     int
	records map[string]dbmodels.OvertimeRecord
}

func newFakeOvertimeStore() *fakeOvertimeStore {
	return &fakeOvertimeStore{records: map[string]dbmodels.OvertimeRecord{}}
}

func (f *fakeOvertimeStore) Create(rec dbmodels.OvertimeRecord) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("record-%d", f.seq)
	f.records[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeOvertimeStore) GetByID(id string) (*dbmodels.OvertimeRecord, error) {
	if rec, ok := f.records[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeOvertimeStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.records[id]
	if !ok {
		return nil
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.RecordStatus)
	}
	if updatedAt, ok := updMap["updated_at"]; ok {
		rec.UpdatedAt = updatedAt.(time.Time)
	}
	f.records[id] = rec
	return nil
}

func (f *fakeOvertimeStore) Delete(id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeOvertimeStore) ListByUser(userID string) ([]dbmodels.OvertimeRecord, error) {
	list := []dbmodels.OvertimeRecord{}
	for _, rec := range f.records {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeOvertimeStore) ListByUserAndHoliday(userID, holidayID string) ([]dbmodels.OvertimeRecord, error) {
	list := []dbmodels.OvertimeRecord{}
	for _, rec := range f.records {
		if rec.UserID == userID && rec.HolidayID == holidayID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeOvertimeStore) ListPendingBank() ([]dbmodels.OvertimeRecord, error) {
	list := []dbmodels.OvertimeRecord{}
	for _, rec := range f.records {
		if rec.Status == models.RecordStatusPendingAdmin && rec.EffectiveKind().IsBank() {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeOvertimeStore) ListAll() ([]dbmodels.OvertimeRecord, error) {
	list := []dbmodels.OvertimeRecord{}
	for _, rec := range f.records {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeOvertimeStore) ExistsBankRecord(userID, holidayID string, kind models.RecordKind) (bool, error) {
	for _, rec := range f.records {
		if rec.UserID == userID && rec.HolidayID == holidayID && rec.EffectiveKind() == kind {
			return true, nil
		}
	}
	return false, nil
}

type fakeCompensationStore struct {
	seq           int
	compensations map[string]dbmodels.HourBankCompensation
}

func newFakeCompensationStore() *fakeCompensationStore {
	return &fakeCompensationStore{compensations: map[string]dbmodels.HourBankCompensation{}}
}

func (f *fakeCompensationStore) Create(rec dbmodels.HourBankCompensation) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("compensation-%d", f.seq)
	f.compensations[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeCompensationStore) GetByID(id string) (*dbmodels.HourBankCompensation, error) {
	if rec, ok := f.compensations[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeCompensationStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.compensations[id]
	if !ok {
		return nil
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.CompensationStatus)
	}
	if reason, ok := updMap["reason"]; ok {
		rec.Reason = reason.(string)
	}
	f.compensations[id] = rec
	return nil
}

func (f *fakeCompensationStore) ListByUser(userID string) ([]dbmodels.HourBankCompensation, error) {
	list := []dbmodels.HourBankCompensation{}
	for _, rec := range f.compensations {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeCompensationStore) ListAll() ([]dbmodels.HourBankCompensation, error) {
	list := []dbmodels.HourBankCompensation{}
	for _, rec := range f.compensations {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeCompensationStore) ListApproved() ([]dbmodels.HourBankCompensation, error) {
	list := []dbmodels.HourBankCompensation{}
	for _, rec := range f.compensations {
		if rec.Status == models.CompensationStatusApproved {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeCompensationStore) SumDetectedHours(userID, holidayID string) (float64, error) {
	var total float64
	for _, rec := range f.compensations {
		if rec.UserID == userID && rec.HolidayID == holidayID && rec.Status == models.CompensationStatusApproved {
			total += rec.DetectedHours
		}
	}
	return total, nil
}

type fakeFileStorage struct{}

func (fakeFileStorage) UploadProofImage(ctx context.Context, userID string, image string) (string, error) {
	return "proofs/" + userID + "/fake", nil
}
func (fakeFileStorage) UploadProfilePicture(ctx context.Context, userID string, image string) (string, error) {
	return "profiles/" + userID + "/fake", nil
}
func (fakeFileStorage) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	return nil, nil
}

type fakeAnalyzer struct {
	result analysisapimodels.AnalysisResult
}

func (f fakeAnalyzer) Analyze(_ context.Context, declaredHours float64, image string) (analysisapimodels.AnalysisResult, error) {
	return f.result, nil
}

type testEnv struct {
	handler       impl
	overtime      *fakeOvertimeStore
	compensations *fakeCompensationStore
}

func newTestEnv() testEnv {
	overtime := newFakeOvertimeStore()
	compensations := newFakeCompensationStore()
	handler := impl{
		inTx: func(fn func(s txStores) error) error {
			return fn(txStores{compensations: compensations, records: overtime})
		},
		usersStore: &fakeUsersStore{users: map[string]dbmodels.User{
			"user-1": {BaseModel: dbmodels.BaseModel{ID: "user-1"}, FirstName: "Jane", LastName: "Doe"},
		}},
		holidayStore: &fakeHolidayStore{holidays: map[string]dbmodels.Holiday{
			"holiday-1": {BaseModel: dbmodels.BaseModel{ID: "holiday-1"}, Name: "New Year", MaxHours: 8},
		}},
		overtimeStore:     overtime,
		compensationStore: compensations,
		fileStorage:       fakeFileStorage{},
	}
	return testEnv{handler: handler, overtime: overtime, compensations: compensations}
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestSubmitManual(t *testing.T) {
	t.Run(`creates a pending bank record with the proof image`, func(t *testing.T) {
		env := newTestEnv()
		recordID, hMsg, err := env.handler.SubmitManual(context.Background(), hourbankapimodels.ManualSubmitRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 2,
			Image:         "aGVsbG8=",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		rec := env.overtime.records[recordID]
		require.Equal(t, models.RecordKindManualBank, rec.Kind)
		require.Equal(t, models.OptionIDManualBankHours, rec.OptionID)
		require.Equal(t, models.RecordStatusPendingAdmin, rec.Status)
		require.Equal(t, float64(2), rec.Hours)
		require.NotEmpty(t, rec.ProofImage)
	})

	t.Run(`rejects an unknown user`, func(t *testing.T) {
		env := newTestEnv()
		_, hMsg, err := env.handler.SubmitManual(context.Background(), hourbankapimodels.ManualSubmitRequest{
			UserID:        "user-404",
			HolidayID:     "holiday-1",
			DeclaredHours: 2,
			Image:         "aGVsbG8=",
		})
		require.NoError(t, err)
		require.Equal(t, "user not found", hMsg)
	})
}

func TestProcessApproval(t *testing.T) {
	t.Run(`an approved verdict writes compensation and record with detected hours`, func(t *testing.T) {
		env := newTestEnv()
		compensationID, hMsg, err := env.handler.ProcessApproval(context.Background(), hourbankapimodels.ProcessApprovalRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 2.5,
			DetectedHours: floatPtr(3),
			Confidence:    90,
			Approved:      boolPtr(true),
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		comp := env.compensations.compensations[compensationID]
		require.Equal(t, models.CompensationStatusApproved, comp.Status)
		require.Equal(t, float64(3), comp.DetectedHours)
		require.Equal(t, float64(2.5), comp.DeclaredHours)
		require.NotNil(t, comp.AnalyzedAt)

		require.Len(t, env.overtime.records, 1)
		for _, rec := range env.overtime.records {
			require.Equal(t, models.RecordKindAiBank, rec.Kind)
			require.Equal(t, models.RecordStatusApproved, rec.Status)
			require.Equal(t, float64(3), rec.Hours)
		}
	})

	t.Run(`a rejected verdict writes the compensation only`, func(t *testing.T) {
		env := newTestEnv()
		compensationID, hMsg, err := env.handler.ProcessApproval(context.Background(), hourbankapimodels.ProcessApprovalRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 2,
			DetectedHours: floatPtr(1),
			Confidence:    40,
			Reason:        "proof does not match",
			Approved:      boolPtr(false),
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		comp := env.compensations.compensations[compensationID]
		require.Equal(t, models.CompensationStatusRejected, comp.Status)
		require.Empty(t, env.overtime.records)
	})
}

func TestSubmitAnalyzed(t *testing.T) {
	t.Run(`feeds the analyzer verdict into approval processing`, func(t *testing.T) {
		env := newTestEnv()
		env.handler.analyzer = fakeAnalyzer{result: analysisapimodels.AnalysisResult{
			Approved:      true,
			DetectedHours: 3,
			Confidence:    85,
			Reason:        "proof matches",
		}}
		view, hMsg, err := env.handler.SubmitAnalyzed(context.Background(), hourbankapimodels.AnalyzeSubmitRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 3,
			Image:         "aGVsbG8=",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.CompensationStatusApproved, view.Status)
		require.Equal(t, float64(3), view.DetectedHours)
		require.Len(t, env.overtime.records, 1)
	})
}

func TestAdminDecision(t *testing.T) {
	submit := func(t *testing.T, env testEnv) string {
		recordID, hMsg, err := env.handler.SubmitManual(context.Background(), hourbankapimodels.ManualSubmitRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 2,
			Image:         "aGVsbG8=",
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		return recordID
	}

	t.Run(`approves a pending bank record`, func(t *testing.T) {
		env := newTestEnv()
		recordID := submit(t, env)
		hMsg, err := env.handler.AdminDecision(context.Background(), hourbankapimodels.AdminApprovalRequest{
			RecordID: recordID,
			Action:   models.AdminActionApprove,
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.RecordStatusApproved, env.overtime.records[recordID].Status)
	})

	t.Run(`a second decision on the same record fails`, func(t *testing.T) {
		env := newTestEnv()
		recordID := submit(t, env)
		hMsg, err := env.handler.AdminDecision(context.Background(), hourbankapimodels.AdminApprovalRequest{
			RecordID: recordID,
			Action:   models.AdminActionApprove,
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		hMsg, err = env.handler.AdminDecision(context.Background(), hourbankapimodels.AdminApprovalRequest{
			RecordID: recordID,
			Action:   models.AdminActionReject,
		})
		require.NoError(t, err)
		require.Contains(t, hMsg, "not awaiting review")
		require.Equal(t, models.RecordStatusApproved, env.overtime.records[recordID].Status)
	})

	t.Run(`rejects a record that is not a bank entry`, func(t *testing.T) {
		env := newTestEnv()
		recordID, err := env.overtime.Create(dbmodels.OvertimeRecord{
			UserID:    "user-1",
			HolidayID: "holiday-1",
			Kind:      models.RecordKindNormal,
			Hours:     2,
			Status:    models.RecordStatusPendingAdmin,
		})
		require.NoError(t, err)

		hMsg, err := env.handler.AdminDecision(context.Background(), hourbankapimodels.AdminApprovalRequest{
			RecordID: recordID,
			Action:   models.AdminActionApprove,
		})
		require.NoError(t, err)
		require.Equal(t, "record is not an hour-bank entry", hMsg)
	})

	t.Run(`a missing record yields a not found error`, func(t *testing.T) {
		env := newTestEnv()
		_, err := env.handler.AdminDecision(context.Background(), hourbankapimodels.AdminApprovalRequest{
			RecordID: "record-404",
			Action:   models.AdminActionApprove,
		})
		require.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run(`three submissions and one approval leave two pending`, func(t *testing.T) {
		env := newTestEnv()
		first := submit(t, env)
		submit(t, env)
		submit(t, env)

		hMsg, err := env.handler.AdminDecision(context.Background(), hourbankapimodels.AdminApprovalRequest{
			RecordID: first,
			Action:   models.AdminActionApprove,
		})
		require.NoError(t, err)
		require.Empty(t, hMsg)

		pending, err := env.handler.PendingApprovals()
		require.NoError(t, err)
		require.Len(t, pending, 2)
	})
}

func TestUserHours(t *testing.T) {
	t.Run(`sums detected hours of approved compensations only`, func(t *testing.T) {
		env := newTestEnv()
		_, _, err := env.handler.ProcessApproval(context.Background(), hourbankapimodels.ProcessApprovalRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 2,
			DetectedHours: floatPtr(2),
			Confidence:    90,
			Approved:      boolPtr(true),
		})
		require.NoError(t, err)
		_, _, err = env.handler.ProcessApproval(context.Background(), hourbankapimodels.ProcessApprovalRequest{
			UserID:        "user-1",
			HolidayID:     "holiday-1",
			DeclaredHours: 4,
			DetectedHours: floatPtr(4),
			Confidence:    30,
			Approved:      boolPtr(false),
		})
		require.NoError(t, err)

		view, err := env.handler.UserHours("user-1", "holiday-1")
		require.NoError(t, err)
		require.Equal(t, float64(2), view.DetectedHours)
	})
}
