package audit

import (
	"context"

	"clinicore-service/internal/app/models"
)

type Publisher interface {
	Publish(ctx context.Context, event models.AuditEvent) error
}
