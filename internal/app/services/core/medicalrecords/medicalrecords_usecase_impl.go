package medicalrecords

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/app/services/shared/audit"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository MedicalRecordRepository
	OwnershipService        authorization.OwnershipService
	AuditPublisher          audit.Publisher
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository MedicalRecordRepository,
	ownershipService authorization.OwnershipService,
	auditPublisher audit.Publisher,
	logger *zap.Logger,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		OwnershipService:        ownershipService,
		AuditPublisher:          auditPublisher,
		Log:                     logger,
	}
}

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, session.User.ID),
	)

	patient, err := uc.OwnershipService.ResolvePatientByIdentifier(ctx, session, request.PatientIdentifier)
	if err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		PatientID: patient.ID,
		UserID:    utils.CallerID(session),
		Diagnosis: request.Diagnosis,
		Notes:     request.Notes,
	}
	if err := uc.MedicalRecordRepository.CreateMedicalRecord(ctx, record); err != nil {
		return nil, err
	}
	record.Patient = patient

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionCreate, constvars.ResourceMedicalRecords, record.ID)
	return record, nil
}

func (uc *medicalRecordUsecase) FindAllMedicalRecords(ctx context.Context, session *models.Session) ([]models.MedicalRecord, error) {
	scope, err := uc.OwnershipService.ScopeFor(session)
	if err != nil {
		return nil, err
	}
	return uc.MedicalRecordRepository.FindMedicalRecords(ctx, scope)
}

func (uc *medicalRecordUsecase) FindMyMedicalRecords(ctx context.Context, session *models.Session) ([]models.MedicalRecord, error) {
	if _, err := uc.OwnershipService.ScopeFor(session); err != nil {
		return nil, err
	}
	return uc.MedicalRecordRepository.FindMedicalRecordsByAuthor(ctx, utils.CallerID(session))
}

func (uc *medicalRecordUsecase) FindMedicalRecordByID(ctx context.Context, session *models.Session, recordID uint64) (*models.MedicalRecord, error) {
	record, err := uc.MedicalRecordRepository.FindMedicalRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound()
	}

	if _, err := uc.OwnershipService.AuthorizePatientAccess(ctx, session, record.PatientID); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, session *models.Session, recordID uint64, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	record, err := uc.FindMedicalRecordByID(ctx, session, recordID)
	if err != nil {
		return nil, err
	}

	if request.Diagnosis != "" {
		record.Diagnosis = request.Diagnosis
	}
	if request.Notes != "" {
		record.Notes = request.Notes
	}

	if err := uc.MedicalRecordRepository.UpdateMedicalRecord(ctx, record); err != nil {
		return nil, err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionUpdate, constvars.ResourceMedicalRecords, record.ID)
	return record, nil
}

func (uc *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, session *models.Session, recordID uint64) error {
	record, err := uc.FindMedicalRecordByID(ctx, session, recordID)
	if err != nil {
		return err
	}

	if err := uc.MedicalRecordRepository.DeleteMedicalRecord(ctx, record.ID); err != nil {
		return err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionDelete, constvars.ResourceMedicalRecords, record.ID)
	return nil
}
