package authorization

import (
	"context"
	"testing"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

func newOwnershipService(repo PatientLookupRepository, publisher *MockAuditPublisher, exposeForbidden bool) OwnershipService {
	return NewOwnershipService(repo, publisher, &config.InternalConfig{
		App: config.App{ExposeForbidden: exposeForbidden},
	}, zap.NewNop())
}

func TestOwnershipService_ScopeFor(t *testing.T) {
	svc := newOwnershipService(new(MockPatientLookupRepository), new(MockAuditPublisher), false)

	t.Run("admin scope is unrestricted", func(t *testing.T) {
		scope, err := svc.ScopeFor(adminSession())
		assert.NoError(t, err)
		assert.True(t, scope.Unrestricted)
	})

	t.Run("doctor scope narrows to the caller", func(t *testing.T) {
		scope, err := svc.ScopeFor(doctorSession("7"))
		assert.NoError(t, err)
		assert.False(t, scope.Unrestricted)
		assert.Equal(t, uint64(7), scope.UserID)
	})

	t.Run("anonymous session is unauthorized", func(t *testing.T) {
		_, err := svc.ScopeFor(&models.Session{SessionID: "sid"})
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("unknown role never falls back to guest access", func(t *testing.T) {
		session := &models.Session{SessionID: "sid", User: models.SessionUser{ID: "9", Role: "NURSE"}}
		_, err := svc.ScopeFor(session)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestOwnershipService_AuthorizePatientAccess(t *testing.T) {
	ctx := context.Background()
	ownPatient := &models.Patient{ID: 10, FullName: "Jane Doe", UserID: 7}

	t.Run("owner may access the patient", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, false)
		repo.On("FindPatientByID", mock.Anything, uint64(10)).Return(ownPatient, nil)

		patient, err := svc.AuthorizePatientAccess(ctx, doctorSession("7"), 10)

		assert.NoError(t, err)
		assert.Equal(t, uint64(10), patient.ID)
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, false)
		repo.On("FindPatientByID", mock.Anything, uint64(10)).Return(ownPatient, nil)

		_, err := svc.AuthorizePatientAccess(ctx, adminSession(), 10)

		assert.NoError(t, err)
	})

	t.Run("missing patient is not found and audited", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, false)
		repo.On("FindPatientByID", mock.Anything, uint64(99)).Return(nil, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
			return event.Decision == constvars.AuditDecisionNotFound
		})).Return(nil)

		_, err := svc.AuthorizePatientAccess(ctx, doctorSession("7"), 99)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "No patient found", customErr.ClientMessage)
		publisher.AssertExpectations(t)
	})

	t.Run("foreign patient collapses to not found by default", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, false)
		repo.On("FindPatientByID", mock.Anything, uint64(10)).Return(ownPatient, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
			return event.Decision == constvars.AuditDecisionForbidden
		})).Return(nil)

		_, err := svc.AuthorizePatientAccess(ctx, doctorSession("8"), 10)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "No patient found", customErr.ClientMessage)
		publisher.AssertExpectations(t)
	})

	t.Run("foreign patient surfaces forbidden when configured", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, true)
		repo.On("FindPatientByID", mock.Anything, uint64(10)).Return(ownPatient, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.AuthorizePatientAccess(ctx, doctorSession("8"), 10)

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestOwnershipService_ResolvePatientByIdentifier(t *testing.T) {
	ctx := context.Background()

	t.Run("blank identifier is invalid input", func(t *testing.T) {
		svc := newOwnershipService(new(MockPatientLookupRepository), new(MockAuditPublisher), false)

		_, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "   ")

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("numeric identifier resolves by id", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		svc := newOwnershipService(repo, new(MockAuditPublisher), false)
		repo.On("FindPatientByID", mock.Anything, uint64(10)).Return(&models.Patient{ID: 10, UserID: 7}, nil)

		patient, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "10")

		assert.NoError(t, err)
		assert.Equal(t, uint64(10), patient.ID)
		repo.AssertNotCalled(t, "FindPatientsByFullName")
	})

	t.Run("exact full name resolves the caller's patient", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		svc := newOwnershipService(repo, new(MockAuditPublisher), false)
		repo.On("FindPatientsByFullName", mock.Anything, "Jane Doe").Return([]models.Patient{
			{ID: 11, FullName: "Jane Doe", UserID: 3},
			{ID: 12, FullName: "Jane Doe", UserID: 7},
		}, nil)

		patient, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "Jane Doe")

		assert.NoError(t, err)
		assert.Equal(t, uint64(12), patient.ID)
	})

	t.Run("no match is patient not found", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, false)
		repo.On("FindPatientsByFullName", mock.Anything, "Nobody Here").Return([]models.Patient{}, nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "Nobody Here")

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "No patient found", customErr.ClientMessage)
	})

	t.Run("name owned by another clinician collapses to not found", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		publisher := new(MockAuditPublisher)
		svc := newOwnershipService(repo, publisher, false)
		repo.On("FindPatientsByFullName", mock.Anything, "Jane Doe").Return([]models.Patient{
			{ID: 11, FullName: "Jane Doe", UserID: 3},
		}, nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event models.AuditEvent) bool {
			return event.Decision == constvars.AuditDecisionForbidden
		})).Return(nil)

		_, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "Jane Doe")

		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		publisher.AssertExpectations(t)
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		repo := new(MockPatientLookupRepository)
		svc := newOwnershipService(repo, new(MockAuditPublisher), false)
		repo.On("FindPatientsByFullName", mock.Anything, "Jane Doe").Return([]models.Patient{
			{ID: 12, FullName: "Jane Doe", UserID: 7},
		}, nil)

		first, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "Jane Doe")
		assert.NoError(t, err)
		second, err := svc.ResolvePatientByIdentifier(ctx, doctorSession("7"), "Jane Doe")
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})
}
