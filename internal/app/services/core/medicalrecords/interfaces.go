package medicalrecords

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/dto/requests"
)

type MedicalRecordUsecase interface {
	CreateMedicalRecord(ctx context.Context, session *models.Session, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
	FindAllMedicalRecords(ctx context.Context, session *models.Session) ([]models.MedicalRecord, error)
	FindMyMedicalRecords(ctx context.Context, session *models.Session) ([]models.MedicalRecord, error)
	FindMedicalRecordByID(ctx context.Context, session *models.Session, recordID uint64) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, session *models.Session, recordID uint64, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, session *models.Session, recordID uint64) error
}

type MedicalRecordRepository interface {
	CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error
	FindMedicalRecords(ctx context.Context, scope authorization.Scope) ([]models.MedicalRecord, error)
	FindMedicalRecordsByAuthor(ctx context.Context, userID uint64) ([]models.MedicalRecord, error)
	FindMedicalRecordByID(ctx context.Context, recordID uint64) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error
	DeleteMedicalRecord(ctx context.Context, recordID uint64) error
}
