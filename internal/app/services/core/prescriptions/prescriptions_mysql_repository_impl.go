package prescriptions

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type prescriptionMySQLRepository struct {
	DB *gorm.DB
}

func NewPrescriptionMySQLRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionMySQLRepository{DB: db}
}

func (r *prescriptionMySQLRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	err := r.DB.WithContext(ctx).Create(prescription).Error
	if err != nil {
		return exceptions.ErrMySQLDBInsertData(err)
	}
	return nil
}

func (r *prescriptionMySQLRepository) FindPrescriptions(ctx context.Context, scope authorization.Scope) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	query := r.DB.WithContext(ctx).Preload("Patient")
	if !scope.Unrestricted {
		query = query.
			Joins("JOIN patients ON patients.id = prescriptions.patient_id").
			Where("patients.user_id = ?", scope.UserID)
	}
	err := query.Order("prescriptions.created_at DESC").Find(&prescriptions).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return prescriptions, nil
}

func (r *prescriptionMySQLRepository) FindPrescriptionsByAuthor(ctx context.Context, userID uint64) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.DB.WithContext(ctx).Preload("Patient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return prescriptions, nil
}

func (r *prescriptionMySQLRepository) FindPrescriptionByID(ctx context.Context, prescriptionID uint64) (*models.Prescription, error) {
	prescription := new(models.Prescription)
	err := r.DB.WithContext(ctx).Preload("Patient").First(prescription, prescriptionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return prescription, nil
}

func (r *prescriptionMySQLRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(prescription).Error
	if err != nil {
		return exceptions.ErrMySQLDBUpdateData(err)
	}
	return nil
}

func (r *prescriptionMySQLRepository) DeletePrescription(ctx context.Context, prescriptionID uint64) error {
	err := r.DB.WithContext(ctx).Delete(&models.Prescription{}, prescriptionID).Error
	if err != nil {
		return exceptions.ErrMySQLDBDeleteData(err)
	}
	return nil
}
