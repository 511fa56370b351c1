package patients

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

type PatientController struct {
	PatientUsecase PatientUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase PatientUsecase, logger *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		Log:            logger,
	}
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreatePatient)
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

	patient, err := ctrl.PatientUsecase.CreatePatient(ctx, utils.SessionFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.NewPatient{Patient: patient})
}

func (ctrl *PatientController) FindAllPatients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientList, err := ctrl.PatientUsecase.FindAllPatients(ctx, utils.SessionFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Patients{Patients: patientList})
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseURLParamID(r, "patientID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.FindPatientByID(ctx, utils.SessionFromContext(r), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Patient{Patient: patient})
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseURLParamID(r, "patientID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePatient)
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

	patient, err := ctrl.PatientUsecase.UpdatePatient(ctx, utils.SessionFromContext(r), patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.UpdatedPatient{Updated: patient})
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseURLParamID(r, "patientID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PatientUsecase.DeletePatient(ctx, utils.SessionFromContext(r), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Message{Message: constvars.PatientDeletedSuccess})
}

func (ctrl *PatientController) SearchPatients(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SearchPatients)
	err := json.NewDecoder(r.Body).Decode(&request)
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

	patientList, err := ctrl.PatientUsecase.SearchPatients(ctx, utils.SessionFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Patients{Patients: patientList})
}
