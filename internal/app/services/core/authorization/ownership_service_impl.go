package authorization

import (
	"context"
	"strconv"
	"strings"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/shared/audit"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ownershipService struct {
	Repository     PatientLookupRepository
	AuditPublisher audit.Publisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewOwnershipService(
	repository PatientLookupRepository,
	auditPublisher audit.Publisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) OwnershipService {
	return &ownershipService{
		Repository:     repository,
		AuditPublisher: auditPublisher,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (svc *ownershipService) ScopeFor(session *models.Session) (Scope, error) {
	if !session.Authenticated() {
		return Scope{}, exceptions.ErrUnauthorized(nil, constvars.ErrDevAuthSessionAnonymous)
	}

	switch session.User.Role {
	case models.RoleAdmin:
		return Scope{Unrestricted: true}, nil
	case models.RoleDoctor:
		return Scope{UserID: utils.CallerID(session)}, nil
	default:
		return Scope{}, exceptions.ErrRoleUnknown(string(session.User.Role))
	}
}

func (svc *ownershipService) AuthorizePatientAccess(ctx context.Context, session *models.Session, patientID uint64) (*models.Patient, error) {
	scope, err := svc.ScopeFor(session)
	if err != nil {
		return nil, err
	}

	patient, err := svc.Repository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, svc.deny(ctx, session, constvars.AuditDecisionNotFound, patientID)
	}

	if !scope.Unrestricted && patient.UserID != scope.UserID {
		return nil, svc.deny(ctx, session, constvars.AuditDecisionForbidden, patientID)
	}

	return patient, nil
}

func (svc *ownershipService) ResolvePatientByIdentifier(ctx context.Context, session *models.Session, identifier string) (*models.Patient, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, exceptions.ErrInvalidIdentifier()
	}

	if patientID, ok := numericIdentifier(identifier); ok {
		return svc.AuthorizePatientAccess(ctx, session, patientID)
	}

	scope, err := svc.ScopeFor(session)
	if err != nil {
		return nil, err
	}

	patients, err := svc.Repository.FindPatientsByFullName(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, svc.deny(ctx, session, constvars.AuditDecisionNotFound, 0)
	}

	if scope.Unrestricted {
		return &patients[0], nil
	}
	for i := range patients {
		if patients[i].UserID == scope.UserID {
			return &patients[i], nil
		}
	}

	// A patient with that name exists, but belongs to another clinician.
	return nil, svc.deny(ctx, session, constvars.AuditDecisionForbidden, patients[0].ID)
}

// deny audits the true decision, then builds the error the caller sees. The
// forbidden category collapses to not-found unless the deployment opts into
// exposing it, so callers cannot probe which patients exist.
func (svc *ownershipService) deny(ctx context.Context, session *models.Session, decision string, patientID uint64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	svc.Log.Warn("ownershipService denied patient access",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, session.User.ID),
		zap.String(constvars.LoggingRoleKey, string(session.User.Role)),
		zap.String(constvars.LoggingDecisionKey, decision),
		zap.Uint64("patient_id", patientID),
	)

	event := models.AuditEvent{
		RequestID:  requestID,
		ActorID:    session.User.ID,
		ActorRole:  session.User.Role,
		Action:     "access",
		Resource:   constvars.ResourcePatients,
		ResourceID: strconv.FormatUint(patientID, 10),
		Decision:   decision,
		OccurredAt: time.Now(),
	}
	if err := svc.AuditPublisher.Publish(ctx, event); err != nil {
		svc.Log.Error("ownershipService failed to publish audit event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if decision == constvars.AuditDecisionForbidden && svc.InternalConfig.App.ExposeForbidden {
		return exceptions.ErrAuthzForbidden()
	}
	return exceptions.ErrAuthzPatientNotFound()
}

func numericIdentifier(identifier string) (uint64, bool) {
	for _, r := range identifier {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseUint(identifier, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
