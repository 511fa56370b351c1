package labresults

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type labResultMySQLRepository struct {
	DB *gorm.DB
}

func NewLabResultMySQLRepository(db *gorm.DB) LabResultRepository {
	return &labResultMySQLRepository{DB: db}
}

func (r *labResultMySQLRepository) CreateLabResult(ctx context.Context, labResult *models.LabResult) error {
	err := r.DB.WithContext(ctx).Create(labResult).Error
	if err != nil {
		return exceptions.ErrMySQLDBInsertData(err)
	}
	return nil
}

func (r *labResultMySQLRepository) FindLabResults(ctx context.Context, scope authorization.Scope) ([]models.LabResult, error) {
	var labResults []models.LabResult
	query := r.DB.WithContext(ctx).Preload("Patient")
	if !scope.Unrestricted {
		query = query.
			Joins("JOIN patients ON patients.id = lab_results.patient_id").
			Where("patients.user_id = ?", scope.UserID)
	}
	err := query.Order("lab_results.created_at DESC").Find(&labResults).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return labResults, nil
}

func (r *labResultMySQLRepository) FindLabResultsByAuthor(ctx context.Context, userID uint64) ([]models.LabResult, error) {
	var labResults []models.LabResult
	err := r.DB.WithContext(ctx).Preload("Patient").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&labResults).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return labResults, nil
}

func (r *labResultMySQLRepository) FindLabResultsByPatientID(ctx context.Context, patientID uint64) ([]models.LabResult, error) {
	var labResults []models.LabResult
	err := r.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&labResults).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return labResults, nil
}

func (r *labResultMySQLRepository) FindLabResultByID(ctx context.Context, labResultID uint64) (*models.LabResult, error) {
	labResult := new(models.LabResult)
	err := r.DB.WithContext(ctx).Preload("Patient").First(labResult, labResultID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return labResult, nil
}

func (r *labResultMySQLRepository) UpdateLabResult(ctx context.Context, labResult *models.LabResult) error {
	err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(labResult).Error
	if err != nil {
		return exceptions.ErrMySQLDBUpdateData(err)
	}
	return nil
}

func (r *labResultMySQLRepository) DeleteLabResult(ctx context.Context, labResultID uint64) error {
	err := r.DB.WithContext(ctx).Delete(&models.LabResult{}, labResultID).Error
	if err != nil {
		return exceptions.ErrMySQLDBDeleteData(err)
	}
	return nil
}
