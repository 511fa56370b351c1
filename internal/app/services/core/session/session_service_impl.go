package session

import (
	"context"
	"strconv"
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"
	"clinicore-service/internal/app/services/shared/redis"
	"clinicore-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type sessionService struct {
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository redis.RedisRepository, internalConfig *config.InternalConfig) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (svc *sessionService) Create(ctx context.Context, user *models.User) (*models.Session, string, error) {
	ttl := time.Duration(svc.InternalConfig.Session.MaxAgeInMinute) * time.Minute
	now := time.Now()

	session := &models.Session{
		SessionID: uuid.New().String(),
		User: models.SessionUser{
			ID:   strconv.FormatUint(user.ID, 10),
			Role: user.Role,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := svc.RedisRepository.CreateSession(ctx, session, ttl); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionToken(session.SessionID, svc.InternalConfig.Session.Secret, ttl)
	if err != nil {
		// The orphaned entry expires on its own; best effort cleanup here.
		svc.RedisRepository.DeleteSession(ctx, session.SessionID)
		return nil, "", err
	}

	return session, token, nil
}

func (svc *sessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionToken(token, svc.InternalConfig.Session.Secret)
	if err != nil {
		return nil, err
	}

	return svc.RedisRepository.GetSession(ctx, sessionID)
}

func (svc *sessionService) Destroy(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.DeleteSession(ctx, sessionID)
}
