package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/application/schedule"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/tag"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/aws"
	"todo-api/internal/infra/database/gorm"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	if err := gorm.Migrate(gorm.Db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	redisClient := newRedisClient()
	var todosCache *redis.Cache
	if redisClient != nil {
		todosCache = redis.NewCache(redisClient, "todos")
	}

	// Init Gateways
	todoGateway := db.NewGormTodoGateway(gorm.Db)
	tagGateway := db.NewGormTagGateway(gorm.Db)
	userGateway := db.NewGormUserGateway(gorm.Db)
	healthGateway := db.NewGormHealthDBGateway(gorm.Db)
	eventGateway := newTodoEventGateway()

	// Init UseCases
	todoUseCase := todo.NewTodoUseCase(todoGateway, eventGateway, todosCache)
	tagUseCase := tag.NewTagUseCase(tagGateway)
	authUseCase := auth.NewAuthUseCase(userGateway,
		resource.GetString("app.auth.jwt-secret"),
		resource.GetDuration("app.auth.token-ttl"))
	healthUseCase := health.NewHealthUseCase(healthGateway, redisClient)

	// Init Controllers
	authController := controller.NewAuthController(api, authUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	authAPI := api.Group("", middleware.RequireAuth(authUseCase))
	todoController := controller.NewTodoController(authAPI, todoUseCase)
	tagController := controller.NewTagController(authAPI, tagUseCase)

	// Init Routes
	authController.InitAuthRoutes()
	healthController.InitHealthRoutes()
	todoController.InitTodoRoutes()
	tagController.InitTagRoutes()

	// Init Schedule
	overdueScheduler := schedule.NewOverdueScheduler(todoUseCase, redisClient, &schedule.OverdueSchedulerConfig{
		CronExpression:  resource.GetString("app.todo.overdue.cron"),
		LockTTL:         resource.GetDuration("app.todo.overdue.lock-ttl"),
		RefreshInterval: resource.GetDuration("app.todo.overdue.lock-refresh-interval"),
	})
	overdueScheduler.InitOverdueScheduleTasks(context.Background())

	// Start server
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

func newRedisClient() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	config := redis.NewConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL("todos", resource.GetDuration("app.redis.todos-cache-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatalf("Fail to connect Redis: %v", err)
	}
	return client
}

func newTodoEventGateway() queue.TodoEventGateway {
	queueName := resource.GetString("app.cloud.events-queue")
	if queueName == "" {
		return queue.NewNoopTodoEventGateway()
	}
	return queue.NewSenderTodoEventGateway(aws.NewSQSSenderAdapter(aws.NewSqsClient()), queueName)
}
