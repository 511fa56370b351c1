package auth

import (
	"context"
	"strconv"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/core/session"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthRepository AuthRepository
	SessionService session.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(
	authRepository AuthRepository,
	sessionService session.SessionService,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		AuthRepository: authRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.SessionIdentity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.User == "" || request.Password == "" {
		return nil, exceptions.ErrMissingCredentials()
	}

	user, err := uc.AuthRepository.FindUserByName(ctx, request.User)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Unknown name and wrong password must be indistinguishable to the caller.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.Login rejected credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidCredentials()
	}

	// A fresh session on every login; any prior session is never reused.
	newSession, token, err := uc.SessionService.Create(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, newSession.User.ID),
		zap.String(constvars.LoggingRoleKey, string(newSession.User.Role)),
	)

	return &responses.SessionIdentity{
		UserID: strconv.FormatUint(user.ID, 10),
		Role:   user.Role,
		Token:  token,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, userSession *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Logout with no live session still succeeds; destroying twice is a no-op.
	if userSession == nil || userSession.SessionID == "" {
		return nil
	}

	if err := uc.SessionService.Destroy(ctx, userSession.SessionID); err != nil {
		uc.Log.Error("authUsecase.Logout error destroying session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrLogout(err)
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorKey, userSession.User.ID),
	)
	return nil
}

func (uc *authUsecase) CheckAuth(ctx context.Context, userSession *models.Session) (*responses.CheckAuth, error) {
	if !userSession.Authenticated() {
		return nil, exceptions.ErrUnauthorized(nil, constvars.ErrDevAuthSessionMissing)
	}

	return &responses.CheckAuth{
		UserID: userSession.User.ID,
		Role:   userSession.User.Role,
	}, nil
}
