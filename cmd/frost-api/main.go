package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "frost-api/configs"
	_ "frost-api/docs"
	"frost-api/internal/application/controller"
	"frost-api/internal/application/middleware"
	"frost-api/internal/application/processor"
	"frost-api/internal/application/schedule"
	"frost-api/internal/domain/gateway/api"
	"frost-api/internal/domain/gateway/cache"
	"frost-api/internal/domain/gateway/db"
	"frost-api/internal/domain/gateway/queue"
	"frost-api/internal/domain/usecase/dashboard"
	"frost-api/internal/domain/usecase/department"
	"frost-api/internal/domain/usecase/health"
	"frost-api/internal/infra/aws"
	gormdb "frost-api/internal/infra/database/gorm"
	sqldb "frost-api/internal/infra/database/sql"
	"frost-api/pkg/http"
	"frost-api/pkg/log"
	"frost-api/pkg/msg"
	"frost-api/pkg/redis"
	"frost-api/pkg/resource"
	"frost-api/pkg/sqs"
	"time"
)

// @title Frost API
// @version 1.0
// @description Departmental weather-station minimum-temperature dashboard service
// @BasePath /frost-api
func main() {
	log.Info(msg.GetMessage("app.start"))

	ctx := context.Background()

	// Init infra
	e := echo.New()
	middleware.SetupRequestLogger(e)
	contextPath := resource.GetString("app.server.context-path")
	apiGroup := e.Group(contextPath)

	// Init Redis
	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL("frost_datasets", time.Duration(resource.GetInt("app.redis.dataset-ttl-minutes"))*time.Minute)
	redisClient := redis.NewClient(redisConfig)

	// Init SQS
	sqsClient := aws.NewSqsClient()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)
	refreshQueue := resource.GetString("app.frost.refresh-queue")

	// Init Gateways
	frostGateway := api.NewFrostGateway(resource.GetString("app.frost.api-url"), http.ClientOptions{
		Backoff: http.DefaultBackoff(),
	})
	departmentGateway := db.NewGormDepartmentGateway(gormdb.Db)
	healthDBGateway := db.NewSQLHealthGateway(sqldb.Db)
	datasetCache := cache.NewRedisDatasetCache(redisClient)
	redisHealthGateway := cache.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCases
	batchSize := resource.GetInt("app.frost.batch-size")
	departmentUseCase := department.NewDepartmentUseCase(refreshQueue, batchSize, queueSender, frostGateway, departmentGateway, datasetCache)
	dashboardUseCase := dashboard.NewDashboardUseCase(frostGateway, departmentGateway, datasetCache)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, redisHealthGateway, queueHealthGateway)

	// Init Controllers
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	departmentController := controller.NewDepartmentController(apiGroup, departmentUseCase)
	dashboardController := controller.NewDashboardController(apiGroup, dashboardUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	departmentController.InitDepartmentRoutes()
	dashboardController.InitDashboardRoutes()
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Worker
	refreshProcessor := processor.NewRefreshProcessor(departmentUseCase)
	worker, err := sqs.NewWorker(sqsClient, refreshQueue, refreshProcessor, &sqs.WorkerConfig{
		PoolSize: resource.GetInt("app.frost.worker-pool-size"),
	})
	if err != nil {
		log.Fatalf("Failed to create refresh worker: %v", err)
	}
	queueHealthGateway.RegisterWorker(refreshQueue, worker)
	go worker.Start(ctx)

	// Init Schedules
	refreshScheduler := schedule.NewRefreshScheduler(
		departmentUseCase,
		redisClient,
		resource.GetString("app.frost.refresh.cron"),
		resource.GetInt("app.frost.refresh.lock-ttl-seconds"),
		resource.GetInt("app.frost.refresh.lock-refresh-seconds"),
	)
	refreshScheduler.InitRefreshScheduleTasks(ctx)

	warmScheduler, err := schedule.NewWarmScheduler(dashboardUseCase, departmentUseCase, resource.GetInt("app.frost.warm.interval-minutes"))
	if err != nil {
		log.Fatalf("Failed to create cache warm scheduler: %v", err)
	}
	if err := warmScheduler.InitWarmScheduleTasks(); err != nil {
		log.Fatalf("Failed to start cache warm scheduler: %v", err)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
