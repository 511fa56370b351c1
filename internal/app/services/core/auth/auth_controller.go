package auth

import (
	"context"
	"net/http"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/requests"
	"clinicore-service/internal/pkg/dto/responses"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthUsecase    AuthUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthController(authUsecase AuthUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *AuthController {
	return &AuthController{
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Send request to be processed by usecase
	identity, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookie(w, identity.Token)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Login{Login: constvars.LoginSuccess})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionData := utils.SessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.clearSessionCookie(w)

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Logout{Logout: constvars.LogoutSuccess})
}

func (ctrl *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	sessionData := utils.SessionFromContext(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	identity, err := ctrl.AuthUsecase.CheckAuth(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusOK, identity)
}

func (ctrl *AuthController) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   ctrl.InternalConfig.Session.MaxAgeInMinute * 60,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
