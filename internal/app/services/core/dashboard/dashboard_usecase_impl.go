package dashboard

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/authorization"
	"clinicore-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

const recentEntriesLimit = 5

type dashboardUsecase struct {
	DashboardRepository DashboardRepository
	OwnershipService    authorization.OwnershipService
	Log                 *zap.Logger
}

func NewDashboardUsecase(
	dashboardRepository DashboardRepository,
	ownershipService authorization.OwnershipService,
	logger *zap.Logger,
) DashboardUsecase {
	return &dashboardUsecase{
		DashboardRepository: dashboardRepository,
		OwnershipService:    ownershipService,
		Log:                 logger,
	}
}

func (uc *dashboardUsecase) Summary(ctx context.Context, session *models.Session) (*responses.Dashboard, error) {
	scope, err := uc.OwnershipService.ScopeFor(session)
	if err != nil {
		return nil, err
	}

	patientCount, err := uc.DashboardRepository.CountPatients(ctx, scope)
	if err != nil {
		return nil, err
	}
	recordCount, err := uc.DashboardRepository.CountMedicalRecords(ctx, scope)
	if err != nil {
		return nil, err
	}
	prescriptionCount, err := uc.DashboardRepository.CountPrescriptions(ctx, scope)
	if err != nil {
		return nil, err
	}
	labResultCount, err := uc.DashboardRepository.CountLabResults(ctx, scope)
	if err != nil {
		return nil, err
	}

	recentPatients, err := uc.DashboardRepository.RecentPatients(ctx, scope, recentEntriesLimit)
	if err != nil {
		return nil, err
	}
	recentLabResults, err := uc.DashboardRepository.RecentLabResults(ctx, scope, recentEntriesLimit)
	if err != nil {
		return nil, err
	}

	return &responses.Dashboard{
		Metrics: []responses.DashboardMetric{
			{Title: "Patients", Value: patientCount},
			{Title: "Medical Records", Value: recordCount},
			{Title: "Prescriptions", Value: prescriptionCount},
			{Title: "Lab Results", Value: labResultCount},
		},
		RecentPatients:   recentPatients,
		RecentLabResults: recentLabResults,
	}, nil
}
