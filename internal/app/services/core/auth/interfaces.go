package auth

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.SessionIdentity, error)
	Logout(ctx context.Context, session *models.Session) error
	CheckAuth(ctx context.Context, session *models.Session) (*responses.CheckAuth, error)
}

type AuthRepository interface {
	// FindUserByName returns (nil, nil) when no user matches so the usecase can
	// fold the miss into the generic invalid-credentials path.
	FindUserByName(ctx context.Context, name string) (*models.User, error)
}
