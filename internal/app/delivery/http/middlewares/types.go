package middlewares

import (
	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/services/core/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService session.SessionService
	InternalConfig *config.InternalConfig
}

func New(log *zap.Logger, sessionService session.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
