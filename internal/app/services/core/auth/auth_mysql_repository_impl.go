package auth

import (
	"context"
	"errors"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type authMySQLRepository struct {
	DB *gorm.DB
}

func NewAuthMySQLRepository(db *gorm.DB) AuthRepository {
	return &authMySQLRepository{DB: db}
}

func (r *authMySQLRepository) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	user := new(models.User)
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMySQLDBFindData(err)
	}
	return user, nil
}
