package dashboard

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type dashboardMySQLRepository struct {
	DB *gorm.DB
}

func NewDashboardMySQLRepository(db *gorm.DB) DashboardRepository {
	return &dashboardMySQLRepository{DB: db}
}

func (r *dashboardMySQLRepository) CountPatients(ctx context.Context, scope authorization.Scope) (int64, error) {
	var count int64
	query := r.DB.WithContext(ctx).Model(&models.Patient{})
	if !scope.Unrestricted {
		query = query.Where("user_id = ?", scope.UserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, exceptions.ErrMySQLDBCountData(err)
	}
	return count, nil
}

func (r *dashboardMySQLRepository) CountMedicalRecords(ctx context.Context, scope authorization.Scope) (int64, error) {
	return r.countDerived(ctx, scope, &models.MedicalRecord{}, "medical_records")
}

func (r *dashboardMySQLRepository) CountPrescriptions(ctx context.Context, scope authorization.Scope) (int64, error) {
	return r.countDerived(ctx, scope, &models.Prescription{}, "prescriptions")
}

func (r *dashboardMySQLRepository) CountLabResults(ctx context.Context, scope authorization.Scope) (int64, error) {
	return r.countDerived(ctx, scope, &models.LabResult{}, "lab_results")
}

func (r *dashboardMySQLRepository) countDerived(ctx context.Context, scope authorization.Scope, model interface{}, table string) (int64, error) {
	var count int64
	query := r.DB.WithContext(ctx).Model(model)
	if !scope.Unrestricted {
		query = query.
			Joins("JOIN patients ON patients.id = "+table+".patient_id").
			Where("patients.user_id = ?", scope.UserID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, exceptions.ErrMySQLDBCountData(err)
	}
	return count, nil
}

func (r *dashboardMySQLRepository) RecentPatients(ctx context.Context, scope authorization.Scope, limit int) ([]models.Patient, error) {
	var patients []models.Patient
	query := r.DB.WithContext(ctx)
	if !scope.Unrestricted {
		query = query.Where("user_id = ?", scope.UserID)
	}
	err := query.Order("created_at DESC").Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patients, nil
}

func (r *dashboardMySQLRepository) RecentLabResults(ctx context.Context, scope authorization.Scope, limit int) ([]models.LabResult, error) {
	var labResults []models.LabResult
	query := r.DB.WithContext(ctx).Preload("Patient")
	if !scope.Unrestricted {
		query = query.
			Joins("JOIN patients ON patients.id = lab_results.patient_id").
			Where("patients.user_id = ?", scope.UserID)
	}
	err := query.Order("lab_results.created_at DESC").Limit(limit).Find(&labResults).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return labResults, nil
}
