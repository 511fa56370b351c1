package patients

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type patientMySQLRepository struct {
	DB *gorm.DB
}

func NewPatientMySQLRepository(db *gorm.DB) PatientRepository {
	return &patientMySQLRepository{DB: db}
}

func scoped(db *gorm.DB, scope authorization.Scope) *gorm.DB {
	if scope.Unrestricted {
		return db
	}
	return db.Where("user_id = ?", scope.UserID)
}

func (r *patientMySQLRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	err := r.DB.WithContext(ctx).Create(patient).Error
	if err != nil {
		return exceptions.ErrMySQLDBInsertData(err)
	}
	return nil
}

func (r *patientMySQLRepository) FindPatients(ctx context.Context, scope authorization.Scope) ([]models.Patient, error) {
	var patients []models.Patient
	err := scoped(r.DB.WithContext(ctx), scope).Order("created_at DESC").Find(&patients).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patients, nil
}

func (r *patientMySQLRepository) FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error) {
	patient := new(models.Patient)
	err := r.DB.WithContext(ctx).First(patient, patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patient, nil
}

func (r *patientMySQLRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	err := r.DB.WithContext(ctx).Save(patient).Error
	if err != nil {
		return exceptions.ErrMySQLDBUpdateData(err)
	}
	return nil
}

func (r *patientMySQLRepository) DeletePatient(ctx context.Context, patientID uint64) error {
	err := r.DB.WithContext(ctx).Delete(&models.Patient{}, patientID).Error
	if err != nil {
		return exceptions.ErrMySQLDBDeleteData(err)
	}
	return nil
}

func (r *patientMySQLRepository) SearchPatients(ctx context.Context, scope authorization.Scope, filters map[string]interface{}) ([]models.Patient, error) {
	var patients []models.Patient
	query := scoped(r.DB.WithContext(ctx), scope)
	for column, value := range filters {
		query = query.Where(column+" = ?", value)
	}
	err := query.Order("full_name ASC").Find(&patients).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patients, nil
}
