package deps

import (
	"context"
	"openhours/internal/config"
	"openhours/internal/core/domain/hours"
	dl "openhours/internal/core/domain/logging"
	drl "openhours/internal/core/domain/rate_limiter"
	"openhours/internal/core/domain/restaurant"
	duow "openhours/internal/core/domain/unit_of_work"
	dbrestaurant "openhours/internal/db/restaurant"
	uow "openhours/internal/db/unit_of_work"
	csvsource "openhours/internal/implementations/csv_source"
	hourscache "openhours/internal/implementations/hours_cache"
	hoursparser "openhours/internal/implementations/hours_parser"
	"openhours/internal/implementations/logging"
	ratelimiter "openhours/internal/implementations/rate_limiter"
	"openhours/internal/rabbitmq"
	restaurantimport "openhours/internal/rabbitmq/publishers/restaurant_import"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now      func() time.Time
	Location *time.Location

	UnitOfWork           duow.UnitOfWork
	RestaurantRepository restaurant.Repository

	RateLimiter drl.RateLimiter
	HoursParser hours.Parser

	// Nil when RABBITMQ_URL is not set.
	ImportQueue restaurant.ImportQueue
	// Nil when CSV_PATH is not set.
	RecordReader restaurant.RecordReader
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.Location = deps.Config.Location()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.RestaurantRepository = dbrestaurant.NewPgxRestaurantRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.HoursParser = hourscache.NewRedis(deps.Redis, deps.Logger, hoursparser.New(), deps.Config.HoursCacheTTL)

	if deps.Config.CSVPath != "" {
		deps.RecordReader = csvsource.NewFile(deps.Config.CSVPath, deps.Config.CSVHasHeader)
	}

	closeImportQueue := deps.initRabbitmqImportQueue()

	return deps, func() {
		// Publishers and consumers go first, the logger goes last.
		closeImportQueue()

		closeFuncs := []func(){
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.RabbitmqURL == "" {
		deps.Logger.Info(context.Background(), "RabbitMQ is disabled.")
		return func() {}
	}
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqImportQueue() func() {
	if deps.Rabbitmq == nil {
		return func() {}
	}
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareQueue(deps.Config.RabbitmqImportQueue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.ImportQueue = restaurantimport.NewRabbitMQ(deps.Logger, rabbitmqChannel, deps.Config.RabbitmqImportQueue)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down restaurant import publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Restaurant import publisher shut down.")
	}
}
