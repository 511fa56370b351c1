package users

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

type UserController struct {
	UserUsecase UserUsecase
	Log         *zap.Logger
}

func NewUserController(userUsecase UserUsecase, logger *zap.Logger) *UserController {
	return &UserController{
		UserUsecase: userUsecase,
		Log:         logger,
	}
}

func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateUser)
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

	user, err := ctrl.UserUsecase.CreateUser(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, responses.NewUser{NewUser: user})
}

func (ctrl *UserController) FindAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userList, err := ctrl.UserUsecase.FindAllUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Users{Users: userList})
}

func (ctrl *UserController) FindUserByID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.UserUsecase.FindUserByID(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.User{User: user})
}

func (ctrl *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateUser)
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

	user, err := ctrl.UserUsecase.UpdateUser(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.UpdatedUser{Updated: user})
}

func (ctrl *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.UserUsecase.DeleteUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.DeletedUser{Result: user})
}

func (ctrl *UserController) AttachPatient(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddPatient)
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

	patient, err := ctrl.UserUsecase.AttachPatient(ctx, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Patient{Patient: patient})
}

func (ctrl *UserController) FindAllDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctorList, err := ctrl.UserUsecase.FindAllDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Doctors{Doctors: doctorList})
}

func (ctrl *UserController) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.EditDoctor)
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

	doctor, err := ctrl.UserUsecase.UpdateDoctor(ctx, doctorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.UpdatedUser{Updated: doctor})
}

func (ctrl *UserController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctor, err := ctrl.UserUsecase.DeleteDoctor(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.DeletedUser{Result: doctor})
}

func (ctrl *UserController) FindDoctorPatients(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patientList, err := ctrl.UserUsecase.FindDoctorPatients(ctx, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Patients{Patients: patientList})
}
