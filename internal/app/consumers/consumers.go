package consumers

import (
	"context"
	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	dl "openhours/internal/core/domain/logging"
	restaurantimported "openhours/internal/rabbitmq/consumers/restaurant_imported"
)

func initRestaurantImportedConsumer(ctx context.Context, deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(ctx, "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqImportQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(ctx, "Could not create RabbitMQ queue.", dl.Entry("err", err), dl.Entry("queue", queue))
		panic(err)
	}

	consumer := restaurantimported.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.SaveRestaurant,
	)
	if err = consumer.Consume(ctx); err != nil {
		deps.Logger.Error(
			ctx,
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(ctx, "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(ctx context.Context, deps *deps.Deps, services *services.Services) func() {
	if deps.Rabbitmq == nil {
		panic("RABBITMQ_URL must be set to run consumers")
	}
	shutdownRestaurantImportedConsumer := initRestaurantImportedConsumer(ctx, deps, services)

	return func() {
		shutdownRestaurantImportedConsumer()
	}
}
