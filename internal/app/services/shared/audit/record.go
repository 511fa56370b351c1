package audit

import (
	"context"
	"strconv"
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Record publishes an allowed-mutation event. Audit failures are logged and
// swallowed; they never fail the request that triggered them.
func Record(ctx context.Context, publisher Publisher, log *zap.Logger, session *models.Session, action, resource string, resourceID uint64) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event := models.AuditEvent{
		RequestID:  requestID,
		ActorID:    session.User.ID,
		ActorRole:  session.User.Role,
		Action:     action,
		Resource:   resource,
		ResourceID: strconv.FormatUint(resourceID, 10),
		Decision:   constvars.AuditDecisionAllowed,
		OccurredAt: time.Now(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		log.Error("audit publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(err),
		)
	}
}
