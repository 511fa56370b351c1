package labresults

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/app/services/shared/audit"
	"clinicore-service/internal/app/services/shared/storage"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const labReportURLExpiry = 15 * time.Minute

type labResultUsecase struct {
	LabResultRepository LabResultRepository
	OwnershipService    authorization.OwnershipService
	MinioStorage        storage.Storage
	AuditPublisher      audit.Publisher
	Log                 *zap.Logger
}

func NewLabResultUsecase(
	labResultRepository LabResultRepository,
	ownershipService authorization.OwnershipService,
	minioStorage storage.Storage,
	auditPublisher audit.Publisher,
	logger *zap.Logger,
) LabResultUsecase {
	return &labResultUsecase{
		LabResultRepository: labResultRepository,
		OwnershipService:    ownershipService,
		MinioStorage:        minioStorage,
		AuditPublisher:      auditPublisher,
		Log:                 logger,
	}
}

func (uc *labResultUsecase) CreateLabResult(ctx context.Context, session *models.Session, request *requests.CreateLabResult) (*models.LabResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labResultUsecase.CreateLabResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, session.User.ID),
	)

	patient, err := uc.OwnershipService.ResolvePatientByIdentifier(ctx, session, request.PatientIdentifier)
	if err != nil {
		return nil, err
	}

	labResult := &models.LabResult{
		PatientID:   patient.ID,
		UserID:      utils.CallerID(session),
		TestName:    request.TestName,
		Result:      request.Result,
		Notes:       request.Notes,
		PerformedAt: parseTimestamp(request.PerformedAt),
	}
	if err := uc.LabResultRepository.CreateLabResult(ctx, labResult); err != nil {
		return nil, err
	}
	labResult.Patient = patient

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionCreate, constvars.ResourceLabResults, labResult.ID)
	return labResult, nil
}

func (uc *labResultUsecase) FindAllLabResults(ctx context.Context, session *models.Session) ([]models.LabResult, error) {
	scope, err := uc.OwnershipService.ScopeFor(session)
	if err != nil {
		return nil, err
	}
	return uc.LabResultRepository.FindLabResults(ctx, scope)
}

func (uc *labResultUsecase) FindMyLabResults(ctx context.Context, session *models.Session) ([]models.LabResult, error) {
	if _, err := uc.OwnershipService.ScopeFor(session); err != nil {
		return nil, err
	}
	return uc.LabResultRepository.FindLabResultsByAuthor(ctx, utils.CallerID(session))
}

func (uc *labResultUsecase) FindLabResultsByPatient(ctx context.Context, session *models.Session, patientID uint64) ([]models.LabResult, error) {
	patient, err := uc.OwnershipService.AuthorizePatientAccess(ctx, session, patientID)
	if err != nil {
		return nil, err
	}
	return uc.LabResultRepository.FindLabResultsByPatientID(ctx, patient.ID)
}

func (uc *labResultUsecase) FindLabResultByID(ctx context.Context, session *models.Session, labResultID uint64) (*models.LabResult, error) {
	labResult, err := uc.LabResultRepository.FindLabResultByID(ctx, labResultID)
	if err != nil {
		return nil, err
	}
	if labResult == nil {
		return nil, exceptions.ErrLabResultNotFound()
	}

	if _, err := uc.OwnershipService.AuthorizePatientAccess(ctx, session, labResult.PatientID); err != nil {
		return nil, err
	}
	return labResult, nil
}

func (uc *labResultUsecase) UpdateLabResult(ctx context.Context, session *models.Session, labResultID uint64, request *requests.UpdateLabResult) (*models.LabResult, error) {
	labResult, err := uc.FindLabResultByID(ctx, session, labResultID)
	if err != nil {
		return nil, err
	}

	if request.TestName != "" {
		labResult.TestName = request.TestName
	}
	if request.Result != "" {
		labResult.Result = request.Result
	}
	if request.Notes != "" {
		labResult.Notes = request.Notes
	}
	if request.PerformedAt != "" {
		labResult.PerformedAt = parseTimestamp(request.PerformedAt)
	}

	if err := uc.LabResultRepository.UpdateLabResult(ctx, labResult); err != nil {
		return nil, err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionUpdate, constvars.ResourceLabResults, labResult.ID)
	return labResult, nil
}

func (uc *labResultUsecase) DeleteLabResult(ctx context.Context, session *models.Session, labResultID uint64) error {
	labResult, err := uc.FindLabResultByID(ctx, session, labResultID)
	if err != nil {
		return err
	}

	if err := uc.LabResultRepository.DeleteLabResult(ctx, labResult.ID); err != nil {
		return err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionDelete, constvars.ResourceLabResults, labResult.ID)
	return nil
}

func (uc *labResultUsecase) UploadLabReport(ctx context.Context, session *models.Session, labResultID uint64, file io.Reader, fileHeader *multipart.FileHeader) (*models.LabResult, error) {
	labResult, err := uc.FindLabResultByID(ctx, session, labResultID)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("lab-results/%d/%s", labResult.ID, fileHeader.Filename)
	storedObject, err := uc.MinioStorage.UploadFile(ctx, file, fileHeader, objectName)
	if err != nil {
		return nil, err
	}

	labResult.ReportObject = storedObject
	if err := uc.LabResultRepository.UpdateLabResult(ctx, labResult); err != nil {
		return nil, err
	}

	audit.Record(ctx, uc.AuditPublisher, uc.Log, session, constvars.AuditActionUpdate, constvars.ResourceLabResults, labResult.ID)
	return labResult, nil
}

func (uc *labResultUsecase) LabReportURL(ctx context.Context, session *models.Session, labResultID uint64) (string, error) {
	labResult, err := uc.FindLabResultByID(ctx, session, labResultID)
	if err != nil {
		return "", err
	}
	if labResult.ReportObject == "" {
		return "", exceptions.ErrLabReportMissing()
	}

	return uc.MinioStorage.PresignedURL(ctx, labResult.ReportObject, labReportURLExpiry)
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now()
	}
	return parsed
}
