package users

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type userMySQLRepository struct {
	DB *gorm.DB
}

func NewUserMySQLRepository(db *gorm.DB) UserRepository {
	return &userMySQLRepository{DB: db}
}

func (r *userMySQLRepository) CreateUser(ctx context.Context, user *models.User) error {
	err := r.DB.WithContext(ctx).Create(user).Error
	if err != nil {
		return exceptions.ErrMySQLDBInsertData(err)
	}
	return nil
}

func (r *userMySQLRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return users, nil
}

func (r *userMySQLRepository) FindUserByID(ctx context.Context, userID uint64) (*models.User, error) {
	user := new(models.User)
	err := r.DB.WithContext(ctx).First(user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return user, nil
}

func (r *userMySQLRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return user, nil
}

func (r *userMySQLRepository) FindUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Where("role = ?", role).Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return users, nil
}

func (r *userMySQLRepository) UpdateUser(ctx context.Context, user *models.User) error {
	err := r.DB.WithContext(ctx).Save(user).Error
	if err != nil {
		return exceptions.ErrMySQLDBUpdateData(err)
	}
	return nil
}

func (r *userMySQLRepository) DeleteUser(ctx context.Context, userID uint64) error {
	err := r.DB.WithContext(ctx).Delete(&models.User{}, userID).Error
	if err != nil {
		return exceptions.ErrMySQLDBDeleteData(err)
	}
	return nil
}

func (r *userMySQLRepository) FindPatientByID(ctx context.Context, patientID uint64) (*models.Patient, error) {
	patient := new(models.Patient)
	err := r.DB.WithContext(ctx).First(patient, patientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patient, nil
}

func (r *userMySQLRepository) FindPatientsByUserID(ctx context.Context, userID uint64) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("full_name ASC").Find(&patients).Error
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return patients, nil
}

func (r *userMySQLRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	err := r.DB.WithContext(ctx).Save(patient).Error
	if err != nil {
		return exceptions.ErrMySQLDBUpdateData(err)
	}
	return nil
}
