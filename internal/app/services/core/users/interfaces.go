package users

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID uint64) (*models.User, error)
	UpdateUser(ctx context.Context, userID uint64, request *requests.UpdateUser) (*models.User, error)
	DeleteUser(ctx context.Context, userID uint64) (*models.User, error)

	AttachPatient(ctx context.Context, userID uint64, request *requests.AddPatient) (*models.Patient, error)

	FindAllDoctors(ctx context.Context) ([]models.User, error)
	UpdateDoctor(ctx context.Context, doctorID uint64, request *requests.EditDoctor) (*models.User, error)
	DeleteDoctor(ctx context.Context, doctorID uint64) (*models.User, error)
	FindDoctorPatients(ctx context.Context, doctorID uint64) ([]models.Patient, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindAllUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, userID uint64) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID uint64) error

	// Patient ownership reassignment belongs to the admin management surface,
	// so the patient rows are reached from here as well.
	FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error)
	FindPatientsByUserID(ctx context.Context, userID uint64) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
}
