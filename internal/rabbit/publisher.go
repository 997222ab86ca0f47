// publisher.go
package rabbit

import (
	"context"
	"encoding/json"
	"time"

	"parcel-delivery-service/internal/model"

	"github.com/rabbitmq/amqp091-go"
)

const exchangeName = "notifications"

// Publisher empuja cada notificación al exchange fanout. Best-effort:
// no hay confirms ni reintentos; un listener caído se pierde el evento.
type Publisher struct {
	ch *amqp091.Channel
}

func NewPublisher(ch *amqp091.Channel) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchangeName,
		"fanout",
		true,  // durable
		false, // auto-delete
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Publish(ctx context.Context, n *model.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx,
		exchangeName,
		"", // fanout ignora routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        body,
		},
	)
}
