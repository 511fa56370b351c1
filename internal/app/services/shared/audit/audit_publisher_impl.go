package audit

import (
	"context"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"golang.org/x/time/rate"
)

type auditPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Limiter *rate.Limiter
}

// NewAuditPublisher declares the audit queue and returns a publisher capped by
// a token bucket so a misbehaving client cannot flood the broker.
func NewAuditPublisher(rabbitMQConnection *amqp091.Connection, queue string, publishPerSecond int) (Publisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &auditPublisher{
		Channel: channel,
		Queue:   queue,
		Limiter: rate.NewLimiter(rate.Limit(publishPerSecond), publishPerSecond),
	}, nil
}

func (p *auditPublisher) Publish(ctx context.Context, event models.AuditEvent) error {
	if !p.Limiter.Allow() {
		// Audit is best-effort under burst; drop rather than stall the request.
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	return nil
}
