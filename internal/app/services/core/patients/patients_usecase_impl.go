package patients

import (
	"context"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/app/services/shared/audit"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	OwnershipService  authorization.OwnershipService
	AuditPublisher    audit.Publisher
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository PatientRepository,
	ownershipService authorization.OwnershipService,
	auditPublisher audit.Publisher,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		OwnershipService:  ownershipService,
		AuditPublisher:    auditPublisher,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, session.User.ID),
	)

	if _, err := uc.OwnershipService.ScopeFor(session); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		FullName:    request.FullName,
		DateOfBirth: parseDate(request.DateOfBirth),
		Phone:       request.Phone,
		Email:       request.Email,
		Address:     request.Address,
		Sex:         request.Sex,
		BloodGroup:  request.BloodGroup,
		// Ownership anchors to the creating clinician, admins included.
		UserID: utils.CallerID(session),
	}
	if err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionCreate, constvars.ResourcePatients, patient.ID)
	return patient, nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, session *models.Session) ([]models.Patient, error) {
	scope, err := uc.OwnershipService.ScopeFor(session)
	if err != nil {
		return nil, err
	}
	return uc.PatientRepository.FindPatients(ctx, scope)
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, session *models.Session, patientID uint64) (*models.Patient, error) {
	return uc.OwnershipService.AuthorizePatientAccess(ctx, session, patientID)
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID uint64, request *requests.UpdatePatient) (*models.Patient, error) {
	patient, err := uc.OwnershipService.AuthorizePatientAccess(ctx, session, patientID)
	if err != nil {
		return nil, err
	}

	if request.FullName != "" {
		patient.FullName = request.FullName
	}
	if request.DateOfBirth != "" {
		patient.DateOfBirth = parseDate(request.DateOfBirth)
	}
	if request.Phone != "" {
		patient.Phone = request.Phone
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	if request.Address != "" {
		patient.Address = request.Address
	}
	if request.Sex != "" {
		patient.Sex = request.Sex
	}
	if request.BloodGroup != "" {
		patient.BloodGroup = request.BloodGroup
	}

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionUpdate, constvars.ResourcePatients, patient.ID)
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, session *models.Session, patientID uint64) error {
	patient, err := uc.OwnershipService.AuthorizePatientAccess(ctx, session, patientID)
	if err != nil {
		return err
	}

	if err := uc.PatientRepository.DeletePatient(ctx, patient.ID); err != nil {
		return err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionDelete, constvars.ResourcePatients, patient.ID)
	return nil
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, session *models.Session, request *requests.SearchPatients) ([]models.Patient, error) {
	scope, err := uc.OwnershipService.ScopeFor(session)
	if err != nil {
		return nil, err
	}

	filters := make(map[string]interface{})
	if request.FullName != "" {
		filters["full_name"] = request.FullName
	}
	if request.DateOfBirth != "" {
		filters["date_of_birth"] = request.DateOfBirth
	}
	if request.Phone != "" {
		filters["phone"] = request.Phone
	}
	if request.Email != "" {
		filters["email"] = request.Email
	}
	if request.Address != "" {
		filters["address"] = request.Address
	}

	return uc.PatientRepository.SearchPatients(ctx, scope, filters)
}

// parseDate trusts the datetime validation tag; a malformed value simply
// leaves the field unset.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}
