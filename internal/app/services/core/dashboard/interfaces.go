package dashboard

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	Summary(ctx context.Context, session *models.Session) (*responses.Dashboard, error)
}

type DashboardRepository interface {
	CountPatients(ctx context.Context, scope authorization.Scope) (int64, error)
	CountMedicalRecords(ctx context.Context, scope authorization.Scope) (int64, error)
	CountPrescriptions(ctx context.Context, scope authorization.Scope) (int64, error)
	CountLabResults(ctx context.Context, scope authorization.Scope) (int64, error)
	RecentPatients(ctx context.Context, scope authorization.Scope, limit int) ([]models.Patient, error)
	RecentLabResults(ctx context.Context, scope authorization.Scope, limit int) ([]models.LabResult, error)
}
