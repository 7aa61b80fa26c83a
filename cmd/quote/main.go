package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/config"
	"github.com/piresc/olbiataxi/internal/pkg/database"
	"github.com/piresc/olbiataxi/internal/pkg/health"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/middleware"
	nsqpkg "github.com/piresc/olbiataxi/internal/pkg/nsq"
	"github.com/piresc/olbiataxi/internal/pkg/retry"
	"github.com/piresc/olbiataxi/internal/pkg/server"
	wspkg "github.com/piresc/olbiataxi/internal/pkg/websocket"
	preferenceHandler "github.com/piresc/olbiataxi/services/preference/handler"
	preferenceHTTP "github.com/piresc/olbiataxi/services/preference/handler/http"
	preferenceRepository "github.com/piresc/olbiataxi/services/preference/repository"
	preferenceUsecase "github.com/piresc/olbiataxi/services/preference/usecase"
	"github.com/piresc/olbiataxi/services/quote/gateway"
	quoteHandler "github.com/piresc/olbiataxi/services/quote/handler"
	quoteHTTP "github.com/piresc/olbiataxi/services/quote/handler/http"
	quoteRepository "github.com/piresc/olbiataxi/services/quote/repository"
	quoteUsecase "github.com/piresc/olbiataxi/services/quote/usecase"
	widgetHandler "github.com/piresc/olbiataxi/services/widget/handler"
	widgetWS "github.com/piresc/olbiataxi/services/widget/handler/websocket"
	widgetUsecase "github.com/piresc/olbiataxi/services/widget/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	flag.Parse()

	configs, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appName := configs.App.Name

	appLogger, err := logger.NewFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retry.NewWithDefaults("redis-connect").Execute(startupCtx, func(ctx context.Context) error {
		var connErr error
		redisClient, connErr = database.NewRedisClient(configs.Redis)
		return connErr
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer, optional
	var publisher gateway.Publisher
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		err = retry.NewWithDefaults("nsq-connect").Execute(startupCtx, func(ctx context.Context) error {
			var connErr error
			producer, connErr = nsqpkg.NewProducer(configs.NSQ.Address)
			return connErr
		})
		if err != nil {
			appLogger.Warn("NSQ unavailable, booking requests will only be logged",
				logger.String("address", configs.NSQ.Address),
				logger.Err(err))
		} else {
			publisher = producer
		}
	}

	// Initialize repositories
	catalogRepo := quoteRepository.NewCatalogRepository()
	themeRepo := preferenceRepository.NewThemeRepository(redisClient)

	// Initialize gateway
	bookingGW := gateway.NewBookingGW(publisher, configs.NSQ.Topic)

	// Initialize usecases
	quoteUC := quoteUsecase.NewQuoteUC(configs, catalogRepo, bookingGW)
	preferenceUC := preferenceUsecase.NewPreferenceUC(themeRepo)
	widgetUC := widgetUsecase.NewWidgetUC(quoteUC, catalogRepo, widgetUsecase.TimingsFromConfig(configs.Widget))

	// Initialize handlers
	wsManager := wspkg.NewManager()
	quoteRoutes := quoteHandler.NewHandler(quoteHTTP.NewQuoteHandler(quoteUC, catalogRepo))
	preferenceRoutes := preferenceHandler.NewHandler(preferenceHTTP.NewPreferenceHandler(preferenceUC))
	widgetRoutes := widgetHandler.NewHandler(widgetWS.NewWidgetHandler(wsManager, widgetUC, configs.Widget.OutboundCapacity))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second

	// Add middlewares
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.ClientIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger))

	// Register health endpoints
	checkers := map[string]health.Checker{
		"redis": health.NewRedisHealthChecker(redisClient),
	}
	if producer != nil {
		checkers["nsq"] = health.CheckerFunc(func(context.Context) error { return producer.Ping() })
	}
	health.RegisterHealthEndpoints(e, appName, checkers)

	// Register service routes
	requestLimiter := middleware.ClientRateLimiter(
		configs.Booking.RequestLimit,
		time.Duration(configs.Booking.RequestWindowSec)*time.Second,
		redisClient.GetClient(),
	)
	quoteRoutes.RegisterRoutes(e, requestLimiter)
	preferenceRoutes.RegisterRoutes(e)
	widgetRoutes.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		wsManager.CloseAll()
		return nil
	})
	if producer != nil {
		srv.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	srv.OnShutdown(func(context.Context) error {
		return redisClient.Close()
	})

	if err := srv.Start(); err != nil {
		appLogger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
