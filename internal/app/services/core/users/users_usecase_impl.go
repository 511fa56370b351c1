package users

import (
	"context"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewUserUsecase(userRepository UserRepository, internalConfig *config.InternalConfig, logger *zap.Logger) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist()
	}

	hashed, err := utils.HashPassword(request.Password, uc.InternalConfig.Hash.Salt)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		Role:     models.Role(request.Role),
	}
	if err := uc.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *userUsecase) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAllUsers(ctx)
}

func (uc *userUsecase) FindUserByID(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound()
	}
	return user, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, userID uint64, request *requests.UpdateUser) (*models.User, error) {
	user, err := uc.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Email != "" && request.Email != user.Email {
		existing, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist()
		}
		user.Email = request.Email
	}
	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Password != "" {
		hashed, err := utils.HashPassword(request.Password, uc.InternalConfig.Hash.Salt)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		user.Password = hashed
	}

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := uc.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.UserRepository.DeleteUser(ctx, userID); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *userUsecase) AttachPatient(ctx context.Context, userID uint64, request *requests.AddPatient) (*models.Patient, error) {
	user, err := uc.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.UserRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrAuthzPatientNotFound()
	}

	patient.UserID = user.ID
	if err := uc.UserRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *userUsecase) FindAllDoctors(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindUsersByRole(ctx, models.RoleDoctor)
}

func (uc *userUsecase) UpdateDoctor(ctx context.Context, doctorID uint64, request *requests.EditDoctor) (*models.User, error) {
	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if request.Email != doctor.Email {
		existing, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist()
		}
	}

	doctor.Name = request.Name
	doctor.Email = request.Email
	if err := uc.UserRepository.UpdateUser(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (uc *userUsecase) DeleteDoctor(ctx context.Context, doctorID uint64) (*models.User, error) {
	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if err := uc.UserRepository.DeleteUser(ctx, doctorID); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (uc *userUsecase) FindDoctorPatients(ctx context.Context, doctorID uint64) ([]models.Patient, error) {
	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.UserRepository.FindPatientsByUserID(ctx, doctor.ID)
}

func (uc *userUsecase) findDoctor(ctx context.Context, doctorID uint64) (*models.User, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleDoctor {
		return nil, exceptions.ErrDoctorNotFound()
	}
	return user, nil
}
