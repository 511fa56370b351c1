package medicalrecords

import (
	"context"
	"net/http"
	"time"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	MedicalRecordUsecase MedicalRecordUsecase
	Log                  *zap.Logger
}

func NewMedicalRecordController(medicalRecordUsecase MedicalRecordUsecase, logger *zap.Logger) *MedicalRecordController {
	return &MedicalRecordController{
		MedicalRecordUsecase: medicalRecordUsecase,
		Log:                  logger,
	}
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateMedicalRecord)
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

	record, err := ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, utils.SessionFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.MedicalRecord{MedicalRecord: record})
}

func (ctrl *MedicalRecordController) FindAllMedicalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	recordList, err := ctrl.MedicalRecordUsecase.FindAllMedicalRecords(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.MedicalRecords{MedicalRecords: recordList})
}

func (ctrl *MedicalRecordController) FindMyMedicalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	recordList, err := ctrl.MedicalRecordUsecase.FindMyMedicalRecords(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.MedicalRecords{MedicalRecords: recordList})
}

func (ctrl *MedicalRecordController) FindMedicalRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID, err := utils.ParseURLParamID(r, "recordID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.MedicalRecordUsecase.FindMedicalRecordByID(ctx, utils.SessionFromContext(r), recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.MedicalRecord{MedicalRecord: record})
}

func (ctrl *MedicalRecordController) UpdateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := utils.ParseURLParamID(r, "recordID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateMedicalRecord)
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

	record, err := ctrl.MedicalRecordUsecase.UpdateMedicalRecord(ctx, utils.SessionFromContext(r), recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.UpdatedMedicalRecord{Updated: record})
}

func (ctrl *MedicalRecordController) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := utils.ParseURLParamID(r, "recordID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.MedicalRecordUsecase.DeleteMedicalRecord(ctx, utils.SessionFromContext(r), recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.WriteHeader(constvars.StatusNoContent)
}
