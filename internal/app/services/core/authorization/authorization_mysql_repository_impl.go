package authorization

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type authorizationMySQLRepository struct {
	DB *gorm.DB
}

func NewAuthorizationMySQLRepository(db *gorm.DB) PatientLookupRepository {
	return &authorizationMySQLRepository{DB: db}
}

func (r *authorizationMySQLRepository) FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error) {
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

func (r *authorizationMySQLRepository) FindPatientsByFullName(ctx context.Context, fullName string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.DB.WithContext(ctx).Where("full_name = ?", fullName).Find(&patients).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patients, nil
}
