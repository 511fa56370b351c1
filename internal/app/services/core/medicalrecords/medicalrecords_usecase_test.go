package medicalrecords

import (
	"context"
	"testing"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) FindMedicalRecords(ctx context.Context, scope authorization.Scope) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, scope)
	if records, ok := args.Get(0).([]models.MedicalRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMedicalRecordRepository) FindMedicalRecordsByAuthor(ctx context.Context, userID uint64) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, userID)
	if records, ok := args.Get(0).([]models.MedicalRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMedicalRecordRepository) FindMedicalRecordByID(ctx context.Context, recordID uint64) (*models.MedicalRecord, error) {
	args := m.Called(ctx, recordID)
	if record, ok := args.Get(0).(*models.MedicalRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMedicalRecordRepository) UpdateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMedicalRecordRepository) DeleteMedicalRecord(ctx context.Context, recordID uint64) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

type MockPatientLookupRepository struct {
	mock.Mock
}

func (m *MockPatientLookupRepository) FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if patient, ok := args.Get(0).(*models.Patient); ok {
		return patient, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientLookupRepository) FindPatientsByFullName(ctx context.Context, fullName string) ([]models.Patient, error) {
	args := m.Called(ctx, fullName)
	if patients, ok := args.Get(0).([]models.Patient); ok {
		return patients, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) Publish(ctx context.Context, event models.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func doctorSession(id string) *models.Session {
	return &models.Session{SessionID: "sid-" + id, User: models.SessionUser{ID: id, Role: models.RoleDoctor}}
}

func adminSession() *models.Session {
	return &models.Session{SessionID: "sid-admin", User: models.SessionUser{ID: "1", Role: models.RoleAdmin}}
}

// The usecase runs against the real ownership service so the name-resolution
// and denial paths are the ones production requests take.
func newRecordUsecase(records *MockMedicalRecordRepository, lookups *MockPatientLookupRepository, publisher *MockAuditPublisher) MedicalRecordUsecase {
	ownership := authorization.NewOwnershipService(lookups, publisher, &config.InternalConfig{}, zap.NewNop())
	return NewMedicalRecordUsecase(records, ownership, publisher, zap.NewNop())
}

func TestMedicalRecordUsecase_CreateMedicalRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("record is attributed to the author, ownership stays with the patient", func(t *testing.T) {
		records := new(MockMedicalRecordRepository)
		lookups := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		usecase := newRecordUsecase(records, lookups, publisher)

		lookups.On("FindPatientsByFullName", mock.Anything, "Jane Doe").Return([]models.Patient{
			{ID: 10, FullName: "Jane Doe", UserID: 7},
		}, nil)
		records.On("CreateMedicalRecord", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
			return record.PatientID == 10 && record.UserID == 7
		})).Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
			return event.Action == constvars.AuditActionCreate && event.Decision == constvars.AuditDecisionAllowed
		})).Return(nil)

		record, err := usecase.CreateMedicalRecord(ctx, doctorSession("7"), &requests.CreateMedicalRecord{
			PatientIdentifier: "Jane Doe",
			Diagnosis:         "Hypertension",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint64(10), record.PatientID)
		assert.Equal(t, uint64(7), record.UserID)
		publisher.AssertExpectations(t)
	})

	t.Run("naming another clinician's patient is refused as not found", func(t *testing.T) {
		records := new(MockMedicalRecordRepository)
		lookups := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		usecase := newRecordUsecase(records, lookups, publisher)

		lookups.On("FindPatientsByFullName", mock.Anything, "Jane Doe").Return([]models.Patient{
			{ID: 10, FullName: "Jane Doe", UserID: 3},
		}, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
			return event.Decision == constvars.AuditDecisionForbidden
		})).Return(nil)

		_, err := usecase.CreateMedicalRecord(ctx, doctorSession("7"), &requests.CreateMedicalRecord{
			PatientIdentifier: "Jane Doe",
			Diagnosis:         "Hypertension",
		})

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "No patient found", customErr.ClientMessage)
		records.AssertNotCalled(t, "CreateMedicalRecord")
		publisher.AssertExpectations(t)
	})

	t.Run("admin writes against any patient, attribution still the admin", func(t *testing.T) {
		records := new(MockMedicalRecordRepository)
		lookups := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		usecase := newRecordUsecase(records, lookups, publisher)

		lookups.On("FindPatientsByFullName", mock.Anything, "Jane Doe").Return([]models.Patient{
			{ID: 10, FullName: "Jane Doe", UserID: 3},
		}, nil)
		records.On("CreateMedicalRecord", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
			return record.PatientID == 10 && record.UserID == 1
		})).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		record, err := usecase.CreateMedicalRecord(ctx, adminSession(), &requests.CreateMedicalRecord{
			PatientIdentifier: "Jane Doe",
			Diagnosis:         "Hypertension",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), record.UserID)
	})
}

func TestMedicalRecordUsecase_FindMedicalRecordByID(t *testing.T) {
	ctx := context.Background()

	t.Run("record behind a foreign patient collapses to not found", func(t *testing.T) {
		records := new(MockMedicalRecordRepository)
		lookups := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		usecase := newRecordUsecase(records, lookups, publisher)

		records.On("FindMedicalRecordByID", mock.Anything, uint64(5)).
			Return(&models.MedicalRecord{ID: 5, PatientID: 10, UserID: 3}, nil)
		lookups.On("FindPatientByID", mock.Anything, uint64(10)).
			Return(&models.Patient{ID: 10, UserID: 3}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := usecase.FindMedicalRecordByID(ctx, doctorSession("7"), 5)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("missing record is its own not-found", func(t *testing.T) {
		records := new(MockMedicalRecordRepository)
		lookups := new(MockPatientLookupRepository)
		usecase := newRecordUsecase(records, lookups, new(MockAuditPublisher))

		records.On("FindMedicalRecordByID", mock.Anything, uint64(99)).Return(nil, nil)

		_, err := usecase.FindMedicalRecordByID(ctx, doctorSession("7"), 99)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Medical record not found", customErr.ClientMessage)
	})
}

func TestMedicalRecordUsecase_FindMyMedicalRecords(t *testing.T) {
	records := new(MockMedicalRecordRepository)
	lookups := new(MockPatientLookupRepository)
	usecase := newRecordUsecase(records, lookups, new(MockAuditPublisher))

	records.On("FindMedicalRecordsByAuthor", mock.Anything, uint64(7)).
		Return([]models.MedicalRecord{{ID: 5, UserID: 7}}, nil)

	found, err := usecase.FindMyMedicalRecords(context.Background(), doctorSession("7"))

	assert.NoError(t, err)
	assert.Len(t, found, 1)
	records.AssertExpectations(t)
}
