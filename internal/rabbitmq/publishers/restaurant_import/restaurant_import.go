package restaurantimport

import (
	"context"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/restaurant"
	"openhours/internal/rabbitmq"
	"openhours/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic(e.NewEmptyArgumentError("queue"))
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (p *RabbitMQ) Publish(ctx context.Context, record restaurant.Record) error {
	message := schema.FromRecord(record)
	body, err := message.Marshal()
	if err != nil {
		logging.Error(p.log, ctx, err, logging.Entry("record", record))
		return err
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(p.log, ctx, err, logging.Entry("record", record))
		return err
	}
	p.log.Debug(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", p.queue),
		logging.Entry("name", record.Name),
	)
	return nil
}
