package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/likeboard/internal/handler/http"
	redisclient "github.com/mikiasgoitom/likeboard/internal/infrastructure/cache"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/config"
	database "github.com/mikiasgoitom/likeboard/internal/infrastructure/database"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/events"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/logger"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/store"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/tracing"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/validator"
	"github.com/mikiasgoitom/likeboard/internal/usecase"
)

const (
	eventQueueSize       = 1024
	eventDeliveryTimeout = 5 * time.Second
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger(logger.WithMinLevel(logger.LevelForEnv(appConfig.GetEnv())))
	if appConfig.GetMongoURI() == "" {
		appLogger.Fatalf("MONGODB_URI environment variable not set")
	}
	if appConfig.GetEnv() == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing is optional
	shutdownTracing, err := tracing.Init(ctx, tracing.Options{
		Endpoint:    appConfig.GetOTelEndpoint(),
		ServiceName: appConfig.GetServiceName(),
		Environment: appConfig.GetEnv(),
		SampleRatio: os.Getenv("OTEL_TRACES_SAMPLER_ARG"),
	})
	if err != nil {
		appLogger.Warnf("tracing disabled: %v", err)
	}

	// Establish MongoDB connection before serving
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	appLogger.Infof("MongoDB connected")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	postRepo := mongodb.NewPostRepository(mongoClient.Database(appConfig.GetMongoDBName()).Collection("posts"))
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := postRepo.EnsureIndexes(indexCtx); err != nil {
		appLogger.Warnf("failed to ensure post indexes: %v", err)
	}
	cancel()

	// Dependency Injection: Usecases
	uuidGenerator := uuidgen.NewGenerator()
	postUsecase := usecase.NewPostUsecase(postRepo, uuidGenerator, appLogger)
	likeUsecase := usecase.NewLikeUsecase(postRepo, appLogger)
	originPolicy := usecase.NewOriginPolicy(appConfig.GetAllowedOrigins(), appConfig.GetTrustedOriginSuffixes(), appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
		if err != nil {
			appLogger.Warnf("post cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			postCache := store.NewPostCacheStore(rdb)
			postUsecase.SetPostCache(postCache)
			likeUsecase.SetPostCache(postCache)
		}
	}

	// Optional Dependency Injection: event stream
	var publisher contract.IEventPublisher = events.NoopPublisher{}
	if brokers := appConfig.GetKafkaBrokers(); len(brokers) > 0 {
		kp, err := events.NewKafkaPublisher(brokers, appConfig.GetKafkaTopic())
		if err != nil {
			appLogger.Warnf("event publishing disabled: %v", err)
		} else {
			publisher = events.NewAsyncPublisher(kp, eventQueueSize, eventDeliveryTimeout, appLogger)
		}
	}
	postUsecase.SetEventPublisher(publisher)
	likeUsecase.SetEventPublisher(publisher)

	// Setup API routes
	router := gin.New()
	router.Use(gin.Logger())
	appRouter := handlerHttp.NewRouter(
		postUsecase, likeUsecase, originPolicy, mongoClient, appLogger,
		handlerHttp.RouterOptions{RateLimitPerSecond: appConfig.GetRateLimitPerSecond()},
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           otelhttp.NewHandler(router, appConfig.GetServiceName()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("server shutdown: %v", err)
	}
	if err := publisher.Close(); err != nil {
		appLogger.Errorf("event publisher close: %v", err)
	}
	mongoClient.Disconnect()
	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Errorf("tracer shutdown: %v", err)
		}
	}
}
