package session

import (
	"context"

	"clinicore-service/internal/app/models"
)

type SessionService interface {
	// Create issues a fresh session for the user and returns it together with
	// the signed cookie token.
	Create(ctx context.Context, user *models.User) (*models.Session, string, error)
	// Resolve verifies a cookie token and loads the backing session. A missing
	// or expired session resolves to nil without error.
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Destroy(ctx context.Context, sessionID string) error
}
