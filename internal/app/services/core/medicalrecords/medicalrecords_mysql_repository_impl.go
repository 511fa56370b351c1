package medicalrecords

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type medicalRecordMySQLRepository struct {
	DB *gorm.DB
}

func NewMedicalRecordMySQLRepository(db *gorm.DB) MedicalRecordRepository {
	return &medicalRecordMySQLRepository{DB: db}
}

func (r *medicalRecordMySQLRepository) CreateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	err := r.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		return exceptions.ErrMySQLDBInsertData(err)
	}
	return nil
}

func (r *medicalRecordMySQLRepository) FindMedicalRecords(ctx context.Context, scope authorization.Scope) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	query := r.DB.WithContext(ctx).Preload("Patient")
	if !scope.Unrestricted {
		// Scope runs through the owning patient, not the authoring clinician.
		query = query.
			Joins("JOIN patients ON patients.id = medical_records.patient_id").
			Where("patients.user_id = ?", scope.UserID)
	}
	err := query.Order("medical_records.created_at DESC").Find(&records).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return records, nil
}

func (r *medicalRecordMySQLRepository) FindMedicalRecordsByAuthor(ctx context.Context, userID uint64) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.DB.WithContext(ctx).Preload("Patient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return records, nil
}

func (r *medicalRecordMySQLRepository) FindMedicalRecordByID(ctx context.Context, recordID uint64) (*models.MedicalRecord, error) {
	record := new(models.MedicalRecord)
	err := r.DB.WithContext(ctx).Preload("Patient").First(record, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return record, nil
}

func (r *medicalRecordMySQLRepository) UpdateMedicalRecord(ctx context.Context, record *models.MedicalRecord) error {
	err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(record).Error
	if err != nil {
		return exceptions.ErrMySQLDBUpdateData(err)
	}
	return nil
}

func (r *medicalRecordMySQLRepository) DeleteMedicalRecord(ctx context.Context, recordID uint64) error {
	err := r.DB.WithContext(ctx).Delete(&models.MedicalRecord{}, recordID).Error
	if err != nil {
		return exceptions.ErrMySQLDBDeleteData(err)
	}
	return nil
}
