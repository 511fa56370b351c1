package labresults

import (
	"context"
	"io"
	"mime/multipart"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/dto/requests"
)

type LabResultUsecase interface {
	CreateLabResult(ctx context.Context, session *models.Session, request *requests.CreateLabResult) (*models.LabResult, error)
	FindAllLabResults(ctx context.Context, session *models.Session) ([]models.LabResult, error)
	FindMyLabResults(ctx context.Context, session *models.Session) ([]models.LabResult, error)
	FindLabResultsByPatient(ctx context.Context, session *models.Session, patientID uint64) ([]models.LabResult, error)
	FindLabResultByID(ctx context.Context, session *models.Session, labResultID uint64) (*models.LabResult, error)
	UpdateLabResult(ctx context.Context, session *models.Session, labResultID uint64, request *requests.UpdateLabResult) (*models.LabResult, error)
	DeleteLabResult(ctx context.Context, session *models.Session, labResultID uint64) error

	UploadLabReport(ctx context.Context, session *models.Session, labResultID uint64, file io.Reader, fileHeader *multipart.FileHeader) (*models.LabResult, error)
	LabReportURL(ctx context.Context, session *models.Session, labResultID uint64) (string, error)
}

type LabResultRepository interface {
	CreateLabResult(ctx context.Context, labResult *models.LabResult) error
	FindLabResults(ctx context.Context, scope authorization.Scope) ([]models.LabResult, error)
	FindLabResultsByAuthor(ctx context.Context, userID uint64) ([]models.LabResult, error)
	FindLabResultsByPatientID(ctx context.Context, patientID uint64) ([]models.LabResult, error)
	FindLabResultByID(ctx context.Context, labResultID uint64) (*models.LabResult, error)
	UpdateLabResult(ctx context.Context, labResult *models.LabResult) error
	DeleteLabResult(ctx context.Context, labResultID uint64) error
}
