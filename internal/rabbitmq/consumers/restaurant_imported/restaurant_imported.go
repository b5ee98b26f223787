package restaurantimported

import (
	"context"
	"errors"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/logging"
	"openhours/internal/core/domain/restaurant"
	"openhours/internal/core/services"
	saverestaurant "openhours/internal/core/services/save_restaurant"
	"openhours/internal/rabbitmq"
	"openhours/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type outcome int

const (
	ack outcome = iota
	requeue
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[saverestaurant.Input, saverestaurant.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[saverestaurant.Input, saverestaurant.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic(e.NewEmptyArgumentError("queue"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

// Consume processes deliveries one at a time until ctx is done.
func (c *Consumer) Consume(ctx context.Context) error {
	deliveries, err := c.channel.Consume(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(ctx, "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			switch c.handle(ctx, delivery.Body, delivery.Redelivered) {
			case requeue:
				c.nack(ctx, delivery)
			default:
				c.ack(ctx, delivery)
			}
		}
	}()
	return nil
}

func (c *Consumer) handle(ctx context.Context, body []byte, redelivered bool) outcome {
	message := &schema.Restaurant{}
	if err := message.Unmarshal(body); err != nil {
		c.log.Error(ctx, "Could not unmarshal restaurant.", logging.Entry("err", err), logging.Entry("body", string(body)))
		return ack
	}

	_, err := c.service.Run(ctx, saverestaurant.Input{Record: message.Record()})
	switch {
	case err == nil:
		return ack
	case errors.Is(err, restaurant.ErrInvalidRecord),
		errors.Is(err, hours.ErrParsing),
		errors.Is(err, hours.ErrTrailingInput):
		c.log.Warning(ctx, "Restaurant rejected.", logging.Entry("restaurant", message), logging.Entry("err", err))
		return ack
	case redelivered:
		c.log.Error(
			ctx,
			"Could not save redelivered restaurant, dropping it.",
			logging.Entry("restaurant", message),
			logging.Entry("err", err),
		)
		return ack
	default:
		c.log.Warning(ctx, "Could not save restaurant, requeueing.", logging.Entry("restaurant", message), logging.Entry("err", err))
		return requeue
	}
}

func (c *Consumer) ack(ctx context.Context, delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(ctx, "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func (c *Consumer) nack(ctx context.Context, delivery amqp091.Delivery) {
	if err := delivery.Nack(false, true); err != nil {
		c.log.Error(ctx, "Could not NACK AMQP message.", logging.Entry("err", err))
	}
}
