package patients

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error)
	FindAllPatients(ctx context.Context, session *models.Session) ([]models.Patient, error)
	FindPatientByID(ctx context.Context, session *models.Session, patientID uint64) (*models.Patient, error)
	UpdatePatient(ctx context.Context, session *models.Session, patientID uint64, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatient(ctx context.Context, session *models.Session, patientID uint64) error
	SearchPatients(ctx context.Context, session *models.Session, request *requests.SearchPatients) ([]models.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	FindPatients(ctx context.Context, scope authorization.Scope) ([]models.Patient, error)
	FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, patientID uint64) error
	SearchPatients(ctx context.Context, scope authorization.Scope, filters map[string]interface{}) ([]models.Patient, error)
}
