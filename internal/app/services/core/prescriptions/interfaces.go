package prescriptions

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/dto/requests"
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*models.Prescription, error)
	FindAllPrescriptions(ctx context.Context, session *models.Session) ([]models.Prescription, error)
	FindMyPrescriptions(ctx context.Context, session *models.Session) ([]models.Prescription, error)
	FindPrescriptionByID(ctx context.Context, session *models.Session, prescriptionID uint64) (*models.Prescription, error)
	UpdatePrescription(ctx context.Context, session *models.Session, prescriptionID uint64, request *requests.UpdatePrescription) (*models.Prescription, error)
	DeletePrescription(ctx context.Context, session *models.Session, prescriptionID uint64) error
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) error
	FindPrescriptions(ctx context.Context, scope authorization.Scope) ([]models.Prescription, error)
	FindPrescriptionsByAuthor(ctx context.Context, userID uint64) ([]models.Prescription, error)
	FindPrescriptionByID(ctx context.Context, prescriptionID uint64) (*models.Prescription, error)
	UpdatePrescription(ctx context.Context, prescription *models.Prescription) error
	DeletePrescription(ctx context.Context, prescriptionID uint64) error
}
