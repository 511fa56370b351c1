package dashboard

import (
	"context"
	"net/http"
	"time"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardUsecase DashboardUsecase
	Log              *zap.Logger
}

func NewDashboardController(dashboardUsecase DashboardUsecase, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		DashboardUsecase: dashboardUsecase,
		Log:              logger,
	}
}

func (ctrl *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := ctrl.DashboardUsecase.Summary(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, summary)
}
