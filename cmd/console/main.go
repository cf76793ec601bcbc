package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/config"
	"github.com/piresc/rideflex-admin/internal/pkg/database"
	"github.com/piresc/rideflex-admin/internal/pkg/health"
	httpclient "github.com/piresc/rideflex-admin/internal/pkg/http"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/middleware"
	nrpkg "github.com/piresc/rideflex-admin/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/rideflex-admin/internal/pkg/nsq"
	"github.com/piresc/rideflex-admin/internal/pkg/server"
	"github.com/piresc/rideflex-admin/services/auth"
	authGateway "github.com/piresc/rideflex-admin/services/auth/gateway/http"
	authRepository "github.com/piresc/rideflex-admin/services/auth/repository"
	authUsecase "github.com/piresc/rideflex-admin/services/auth/usecase"
	"github.com/piresc/rideflex-admin/services/backend"
	backendGateway "github.com/piresc/rideflex-admin/services/backend/gateway/http"
	backendUsecase "github.com/piresc/rideflex-admin/services/backend/usecase"
	"github.com/piresc/rideflex-admin/services/dashboard/handler"
	dashboardUsecase "github.com/piresc/rideflex-admin/services/dashboard/usecase"
)

func main() {
	appName := "rideflex-admin-console"
	configPath := "config/console.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("backend", configs.Backend.BaseURL))

	// Initialize New Relic
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			zapLogger.Warn("New Relic connection timeout", logger.Err(err))
		}
	}

	healthService := health.NewService()

	// Session storage
	var (
		sessionRepo auth.SessionRepo
		redisClient *database.RedisClient
	)
	switch configs.Session.Store {
	case "redis":
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		sessionRepo = authRepository.NewRedisSessionRepo(redisClient, configs.Session.KeyPrefix)
		healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	default:
		sessionRepo = authRepository.NewMemorySessionRepo()
	}

	// Backend client and gateways
	client := httpclient.NewClient(httpclient.Config{
		BaseURL:    configs.Backend.BaseURL,
		Timeout:    configs.Backend.RequestTimeout,
		MaxRetries: configs.Backend.MaxRetries,
	}, zapLogger)
	authGW := authGateway.NewAuthGateway(client)
	backendGW := backendGateway.NewBackendGateway(client)

	healthService.AddChecker("backend", health.CheckerFunc(func(ctx context.Context) error {
		for host, state := range client.BreakerStats() {
			if state == "OPEN" {
				return fmt.Errorf("circuit breaker for %s is open", host)
			}
		}
		return nil
	}))

	// Admin action recorders
	var recorders []backend.ActionRecorder
	if configs.Audit.Enabled {
		auditLogger, err := logger.NewAuditLogger(configs.Audit.FilePath)
		if err != nil {
			zapLogger.Fatal("Failed to open audit log", logger.Err(err))
		}
		defer auditLogger.Close()
		recorders = append(recorders, auditLogger)
	}

	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		recorders = append(recorders, nsqpkg.NewActionPublisher(producer, configs.NSQ.Topic))
		healthService.AddChecker("nsq", producer)
	}

	// Initialize usecases
	sessionUC := authUsecase.NewSessionUC(sessionRepo, authGW)
	apiUC := backendUsecase.NewAPIUC(backendGW, sessionUC, backendUsecase.NewMultiRecorder(recorders...))
	poller := dashboardUsecase.NewPoller(apiUC, configs.Backend.PollInterval, nrApp)
	controller := dashboardUsecase.NewController(apiUC, poller, poller)

	poller.Subscribe(controller.Reconcile)
	sessionUC.OnExpired(func() {
		poller.Stop()
		controller.Reset()
		zapLogger.Info("Session expired, dashboard stopped")
	})

	restoreCtx, cancel := context.WithTimeout(context.Background(), configs.Backend.RequestTimeout+5*time.Second)
	if err := sessionUC.Restore(restoreCtx); err != nil {
		zapLogger.Warn("Stored session could not be verified", logger.String("error", apperrors.Text(err)))
	}
	cancel()
	if sessionUC.IsAuthenticated() {
		poller.Start()
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, healthService)

	var loginLimiter echo.MiddlewareFunc
	if redisClient != nil && configs.Console.LoginRateLimit > 0 {
		loginLimiter = middleware.LoginRateLimiter(configs.Console.LoginRateLimit, configs.Console.LoginRateWindow, redisClient.GetClient())
	}

	consoleHandler := handler.NewHandler(sessionUC, poller, controller, apiUC, configs.Console)
	consoleHandler.RegisterRoutes(e, loginLimiter)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	components := srv.Components()
	if nrApp != nil {
		components.Register("newrelic", func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	if redisClient != nil {
		components.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
	}
	if producer != nil {
		components.Register("nsq", func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
	}
	components.Register("dashboard-poller", func(ctx context.Context) error {
		poller.Stop()
		return nil
	})

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server", logger.String("app", appName), logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
