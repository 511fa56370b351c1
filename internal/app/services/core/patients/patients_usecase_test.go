package patients

import (
	"context"
	"testing"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindPatients(ctx context.Context, scope authorization.Scope) ([]models.Patient, error) {
	args := m.Called(ctx, scope)
	if patients, ok := args.Get(0).([]models.Patient); ok {
		return patients, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if patient, ok := args.Get(0).(*models.Patient); ok {
		return patient, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeletePatient(ctx context.Context, patientID uint64) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func (m *MockPatientRepository) SearchPatients(ctx context.Context, scope authorization.Scope, filters map[string]interface{}) ([]models.Patient, error) {
	args := m.Called(ctx, scope, filters)
	if patients, ok := args.Get(0).([]models.Patient); ok {
		return patients, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOwnershipService struct {
	mock.Mock
}

func (m *MockOwnershipService) ScopeFor(session *models.Session) (authorization.Scope, error) {
	args := m.Called(session)
	return args.Get(0).(authorization.Scope), args.Error(1)
}

func (m *MockOwnershipService) AuthorizePatientAccess(ctx context.Context, session *models.Session, patientID uint64) (*models.Patient, error) {
	args := m.Called(ctx, session, patientID)
	if patient, ok := args.Get(0).(*models.Patient); ok {
		return patient, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOwnershipService) ResolvePatientByIdentifier(ctx context.Context, session *models.Session, identifier string) (*models.Patient, error) {
	args := m.Called(ctx, session, identifier)
	if patient, ok := args.Get(0).(*models.Patient); ok {
		return patient, args.Error(1)
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

func newPatientUsecase(repo *MockPatientRepository, ownership *MockOwnershipService, publisher *MockAuditPublisher) PatientUsecase {
	return NewPatientUsecase(repo, ownership, publisher, zap.NewNop())
}

func TestPatientUsecase_CreatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("new patient is anchored to the creating clinician", func(t *testing.T) {
		repo := new(MockPatientRepository)
		ownership := new(MockOwnershipService)
		publisher := new(MockAuditPublisher)
		usecase := newPatientUsecase(repo, ownership, publisher)

		session := doctorSession("7")
		ownership.On("ScopeFor", session).Return(authorization.Scope{UserID: 7}, nil)
		repo.On("CreatePatient", mock.Anything, mock.MatchedBy(func(patient *models.Patient) bool {
			return patient.FullName == "Jane Doe" && patient.UserID == 7
		})).Return(nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
			return event.Action == constvars.AuditActionCreate && event.Decision == constvars.AuditDecisionAllowed
		})).Return(nil)

		patient, err := usecase.CreatePatient(ctx, session, &requests.CreatePatient{
			FullName:    "Jane Doe",
			DateOfBirth: "1990-04-01",
			Sex:         "FEMALE",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint64(7), patient.UserID)
		if assert.NotNil(t, patient.DateOfBirth) {
			assert.Equal(t, 1990, patient.DateOfBirth.Year())
		}
		publisher.AssertExpectations(t)
	})

	t.Run("unknown role cannot create patients", func(t *testing.T) {
		repo := new(MockPatientRepository)
		ownership := new(MockOwnershipService)
		usecase := newPatientUsecase(repo, ownership, new(MockAuditPublisher))

		session := &models.Session{SessionID: "sid", User: models.SessionUser{ID: "9", Role: "NURSE"}}
		ownership.On("ScopeFor", session).Return(authorization.Scope{}, exceptions.ErrRoleUnknown("NURSE"))

		_, err := usecase.CreatePatient(ctx, session, &requests.CreatePatient{FullName: "Jane Doe"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreatePatient")
	})
}

func TestPatientUsecase_FindAllPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("list queries run under the caller's scope", func(t *testing.T) {
		repo := new(MockPatientRepository)
		ownership := new(MockOwnershipService)
		usecase := newPatientUsecase(repo, ownership, new(MockAuditPublisher))

		session := doctorSession("7")
		scope := authorization.Scope{UserID: 7}
		ownership.On("ScopeFor", session).Return(scope, nil)
		repo.On("FindPatients", mock.Anything, scope).Return([]models.Patient{{ID: 10, UserID: 7}}, nil)

		patients, err := usecase.FindAllPatients(ctx, session)

		assert.NoError(t, err)
		assert.Len(t, patients, 1)
		repo.AssertExpectations(t)
	})
}

func TestPatientUsecase_UpdatePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("update rewrites only the provided fields", func(t *testing.T) {
		repo := new(MockPatientRepository)
		ownership := new(MockOwnershipService)
		publisher := new(MockAuditPublisher)
		usecase := newPatientUsecase(repo, ownership, publisher)

		session := doctorSession("7")
		ownership.On("AuthorizePatientAccess", mock.Anything, session, uint64(10)).
			Return(&models.Patient{ID: 10, FullName: "Jane Doe", Phone: "555-0100", UserID: 7}, nil)
		repo.On("UpdatePatient", mock.Anything, mock.Anything).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		patient, err := usecase.UpdatePatient(ctx, session, 10, &requests.UpdatePatient{Phone: "555-0199"})

		assert.NoError(t, err)
		assert.Equal(t, "555-0199", patient.Phone)
		assert.Equal(t, "Jane Doe", patient.FullName)
	})

	t.Run("denied access stops the update", func(t *testing.T) {
		repo := new(MockPatientRepository)
		ownership := new(MockOwnershipService)
		usecase := newPatientUsecase(repo, ownership, new(MockAuditPublisher))

		session := doctorSession("8")
		ownership.On("AuthorizePatientAccess", mock.Anything, session, uint64(10)).
			Return(nil, exceptions.ErrAuthzPatientNotFound())

		_, err := usecase.UpdatePatient(ctx, session, 10, &requests.UpdatePatient{Phone: "555-0199"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdatePatient")
	})
}

func TestPatientUsecase_DeletePatient(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPatientRepository)
	ownership := new(MockOwnershipService)
	publisher := new(MockAuditPublisher)
	usecase := newPatientUsecase(repo, ownership, publisher)

	session := doctorSession("7")
	ownership.On("AuthorizePatientAccess", mock.Anything, session, uint64(10)).
		Return(&models.Patient{ID: 10, UserID: 7}, nil)
	repo.On("DeletePatient", mock.Anything, uint64(10)).Return(nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
		return event.Action == constvars.AuditActionDelete
	})).Return(nil)

	assert.NoError(t, usecase.DeletePatient(ctx, session, 10))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPatientUsecase_SearchPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("blank filters are dropped from the query", func(t *testing.T) {
		repo := new(MockPatientRepository)
		ownership := new(MockOwnershipService)
		usecase := newPatientUsecase(repo, ownership, new(MockAuditPublisher))

		session := doctorSession("7")
		scope := authorization.Scope{UserID: 7}
		ownership.On("ScopeFor", session).Return(scope, nil)
		repo.On("SearchPatients", mock.Anything, scope, map[string]interface{}{
			"full_name": "Jane Doe",
		}).Return([]models.Patient{{ID: 10}}, nil)

		patients, err := usecase.SearchPatients(ctx, session, &requests.SearchPatients{FullName: "Jane Doe"})

		assert.NoError(t, err)
		assert.Len(t, patients, 1)
		repo.AssertExpectations(t)
	})
}
