package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository PrescriptionRepository
	OwnershipService       authorization.OwnershipService
	AuditPublisher         audit.Publisher
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository PrescriptionRepository,
	ownershipService authorization.OwnershipService,
	auditPublisher audit.Publisher,
	logger *zap.Logger,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		OwnershipService:       ownershipService,
		AuditPublisher:         auditPublisher,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, session.User.ID),
	)

	patient, err := uc.OwnershipService.ResolvePatientByIdentifier(ctx, session, request.PatientIdentifier)
	if err != nil {
		return nil, err
	}

	prescription := &models.Prescription{
		PatientID:    patient.ID,
		UserID:       utils.CallerID(session),
		Medication:   request.Medication,
		Dosage:       request.Dosage,
		Instructions: request.Instructions,
	}
	if err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription); err != nil {
		return nil, err
	}
	prescription.Patient = patient

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionCreate, constvars.ResourcePrescriptions, prescription.ID)
	return prescription, nil
}

func (uc *prescriptionUsecase) FindAllPrescriptions(ctx context.Context, session *models.Session) ([]models.Prescription, error) {
	scope, err := uc.OwnershipService.ScopeFor(session)
	if err != nil {
		return nil, err
	}
	return uc.PrescriptionRepository.FindPrescriptions(ctx, scope)
}

func (uc *prescriptionUsecase) FindMyPrescriptions(ctx context.Context, session *models.Session) ([]models.Prescription, error) {
	if _, err := uc.OwnershipService.ScopeFor(session); err != nil {
		return nil, err
	}
	return uc.PrescriptionRepository.FindPrescriptionsByAuthor(ctx, utils.CallerID(session))
}

func (uc *prescriptionUsecase) FindPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID uint64) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindPrescriptionByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotFound()
	}

	if _, err := uc.OwnershipService.AuthorizePatientAccess(ctx, session, prescription.PatientID); err != nil {
		return nil, err
	}
	return prescription, nil
}

func (uc *prescriptionUsecase) UpdatePrescription(ctx context.Context, session *models.Session, prescriptionID uint64, request *requests.UpdatePrescription) (*models.Prescription, error) {
	prescription, err := uc.FindPrescriptionByID(ctx, session, prescriptionID)
	if err != nil {
		return nil, err
	}

	if request.Medication != "" {
		prescription.Medication = request.Medication
	}
	if request.Dosage != "" {
		prescription.Dosage = request.Dosage
	}
	if request.Instructions != "" {
		prescription.Instructions = request.Instructions
	}

	if err := uc.PrescriptionRepository.UpdatePrescription(ctx, prescription); err != nil {
		return nil, err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionUpdate, constvars.ResourcePrescriptions, prescription.ID)
	return prescription, nil
}

func (uc *prescriptionUsecase) DeletePrescription(ctx context.Context, session *models.Session, prescriptionID uint64) error {
	prescription, err := uc.FindPrescriptionByID(ctx, session, prescriptionID)
	if err != nil {
		return err
	}

	if err := uc.PrescriptionRepository.DeletePrescription(ctx, prescription.ID); err != nil {
		return err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionDelete, constvars.ResourcePrescriptions, prescription.ID)
	return nil
}
