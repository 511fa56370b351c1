package labresults

import (
	"context"
	"net/http"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LabResultController struct {
	LabResultUsecase LabResultUsecase
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewLabResultController(labResultUsecase LabResultUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *LabResultController {
	return &LabResultController{
		LabResultUsecase: labResultUsecase,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (ctrl *LabResultController) CreateLabResult(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateLabResult)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	labResult, err := ctrl.LabResultUsecase.CreateLabResult(ctx, utils.SessionFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.LabResult{LabResult: labResult})
}

func (ctrl *LabResultController) FindAllLabResults(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	labResultList, err := ctrl.LabResultUsecase.FindAllLabResults(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.LabResults{LabResults: labResultList})
}

func (ctrl *LabResultController) FindMyLabResults(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	labResultList, err := ctrl.LabResultUsecase.FindMyLabResults(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.LabResults{LabResults: labResultList})
}

func (ctrl *LabResultController) FindPatientLabResults(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseURLParamID(r, "patientID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	labResultList, err := ctrl.LabResultUsecase.FindLabResultsByPatient(ctx, utils.SessionFromContext(r), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.LabResults{LabResults: labResultList})
}

func (ctrl *LabResultController) FindLabResultByID(w http.ResponseWriter, r *http.Request) {
	labResultID, err := utils.ParseURLParamID(r, "labResultID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	labResult, err := ctrl.LabResultUsecase.FindLabResultByID(ctx, utils.SessionFromContext(r), labResultID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.LabResult{LabResult: labResult})
}

func (ctrl *LabResultController) UpdateLabResult(w http.ResponseWriter, r *http.Request) {
	labResultID, err := utils.ParseURLParamID(r, "labResultID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateLabResult)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	labResult, err := ctrl.LabResultUsecase.UpdateLabResult(ctx, utils.SessionFromContext(r), labResultID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.UpdatedLabResult{Updated: labResult})
}

func (ctrl *LabResultController) DeleteLabResult(w http.ResponseWriter, r *http.Request) {
	labResultID, err := utils.ParseURLParamID(r, "labResultID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.LabResultUsecase.DeleteLabResult(ctx, utils.SessionFromContext(r), labResultID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.WriteHeader(constvars.StatusNoContent)
}

func (ctrl *LabResultController) UploadLabReport(w http.ResponseWriter, r *http.Request) {
	labResultID, err := utils.ParseURLParamID(r, "labResultID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxBytes := ctrl.InternalConfig.App.LabReportMaxUploadSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("report")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	labResult, err := ctrl.LabResultUsecase.UploadLabReport(ctx, utils.SessionFromContext(r), labResultID, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.LabResult{LabResult: labResult})
}

func (ctrl *LabResultController) GetLabReport(w http.ResponseWriter, r *http.Request) {
	labResultID, err := utils.ParseURLParamID(r, "labResultID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reportURL, err := ctrl.LabResultUsecase.LabReportURL(ctx, utils.SessionFromContext(r), labResultID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.LabReportURL{URL: reportURL})
}
