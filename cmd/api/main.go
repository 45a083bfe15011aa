// @title TAM Survey API
// @version 1.0
// @description Technology Acceptance Model questionnaires: authoring, answering and results analysis.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"tam-survey/internal/adapter"
	"tam-survey/internal/cache"
	"tam-survey/internal/config"
	"tam-survey/internal/database"
	"tam-survey/internal/domain"
	"tam-survey/internal/handler"
	"tam-survey/internal/logger"
	"tam-survey/internal/middleware"
	"tam-survey/internal/repository"
	"tam-survey/internal/service"
	"tam-survey/internal/validation"

	_ "tam-survey/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.LoggerConfig); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionnaireRepository := repository.NewQuestionnaireDatabaseAdapter(db)
	responseRepository := repository.NewResponseDatabaseAdapter(db)
	answerRepository := repository.NewAnswerDatabaseAdapter(db)
	profileRepository := repository.NewProfileDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis only caches results, so the API keeps serving without it.
	var cacheAdapter domain.Cache
	var cachePinger handler.Pinger
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, results caching disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		cachePinger = handler.PingFunc(cacheAdapter.Ping)
		appLogger.Info("RedisCacheAdapter initialized", zap.String("address", cfg.Redis.Address))
	}
	resultsCache := service.NewResultsCacheService(cacheAdapter, cfg.Analysis.CacheTTL)

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	questionnaireService := service.NewQuestionnaireService(questionnaireRepository, profileRepository, txManager, resultsCache)
	responseService := service.NewResponseService(questionnaireRepository, responseRepository, answerRepository, txManager, resultsCache)
	resultsService := service.NewResultsService(questionnaireRepository, responseRepository, answerRepository, profileRepository, resultsCache, cfg.Analysis)
	profileService := service.NewProfileService(profileRepository)
	appLogger.Info("Services initialized")

	validator := validation.NewValidator()
	h := handlers{
		questionnaire: handler.NewQuestionnaireHandler(questionnaireService, validator),
		response:      handler.NewResponseHandler(responseService, validator),
		results:       handler.NewResultsHandler(resultsService),
		profile:       handler.NewProfileHandler(profileService, validator),
		health:        handler.NewHealthHandler(db, cachePinger),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	registerRoutes(app, h, authService, middleware.NewValidationMiddleware(validator))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.LoggerConfig.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
