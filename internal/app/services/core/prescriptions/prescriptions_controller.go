package prescriptions

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

type PrescriptionController struct {
	PrescriptionUsecase PrescriptionUsecase
	Log                 *zap.Logger
}

func NewPrescriptionController(prescriptionUsecase PrescriptionUsecase, logger *zap.Logger) *PrescriptionController {
	return &PrescriptionController{
		PrescriptionUsecase: prescriptionUsecase,
		Log:                 logger,
	}
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreatePrescription)
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

	prescription, err := ctrl.PrescriptionUsecase.CreatePrescription(ctx, utils.SessionFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.Prescription{Prescription: prescription})
}

func (ctrl *PrescriptionController) FindAllPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescriptionList, err := ctrl.PrescriptionUsecase.FindAllPrescriptions(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Prescriptions{Prescriptions: prescriptionList})
}

func (ctrl *PrescriptionController) FindMyPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescriptionList, err := ctrl.PrescriptionUsecase.FindMyPrescriptions(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Prescriptions{Prescriptions: prescriptionList})
}

func (ctrl *PrescriptionController) FindPrescriptionByID(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := utils.ParseURLParamID(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.FindPrescriptionByID(ctx, utils.SessionFromContext(r), prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Prescription{Prescription: prescription})
}

func (ctrl *PrescriptionController) UpdatePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := utils.ParseURLParamID(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePrescription)
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

	prescription, err := ctrl.PrescriptionUsecase.UpdatePrescription(ctx, utils.SessionFromContext(r), prescriptionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.UpdatedPrescription{Updated: prescription})
}

func (ctrl *PrescriptionController) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := utils.ParseURLParamID(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PrescriptionUsecase.DeletePrescription(ctx, utils.SessionFromContext(r), prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Message{Message: constvars.PrescriptionDeletedSuccess})
}
