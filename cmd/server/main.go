package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/cache"
	"github.com/seu-repo/solartech/internal/adapter/external/payment"
	grpcserver "github.com/seu-repo/solartech/internal/adapter/grpc/server"
	"github.com/seu-repo/solartech/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/solartech/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/solartech/internal/adapter/ingest"
	"github.com/seu-repo/solartech/internal/adapter/queue"
	"github.com/seu-repo/solartech/internal/adapter/storage/postgres"
	"github.com/seu-repo/solartech/internal/adapter/vault"
	wsAdapter "github.com/seu-repo/solartech/internal/adapter/websocket"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/observability/telemetry"
	"github.com/seu-repo/solartech/internal/ports"
	"github.com/seu-repo/solartech/internal/service/alert"
	"github.com/seu-repo/solartech/internal/service/analytics"
	"github.com/seu-repo/solartech/internal/service/auth"
	"github.com/seu-repo/solartech/internal/service/billing"
	"github.com/seu-repo/solartech/internal/service/client"
	"github.com/seu-repo/solartech/internal/service/dashboard"
	"github.com/seu-repo/solartech/internal/service/email"
	"github.com/seu-repo/solartech/internal/service/health"
	"github.com/seu-repo/solartech/internal/service/pipeline"
	"github.com/seu-repo/solartech/internal/service/production"
	"github.com/seu-repo/solartech/internal/service/project"
	"github.com/seu-repo/solartech/pkg/config"
)

const (
	serviceName    = "solartech-api"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting SolarTech",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Optionally pull secrets from Vault
	if cfg.Vault.Enabled {
		secrets, err := vault.NewSecretManager(cfg.Vault.Address, cfg.Vault.Token)
		if err != nil {
			logger.Fatal("Failed to connect to Vault", zap.Error(err))
		}
		if url, err := secrets.GetDatabaseURL(); err == nil && url != "" {
			cfg.Database.URL = url
		}
		if secret, err := secrets.GetJWTSecret(); err == nil && secret != "" {
			cfg.JWT.Secret = secret
		}
		if key, err := secrets.GetStripeKey(); err == nil && key != "" {
			cfg.Billing.StripeSecretKey = key
		}
		logger.Info("Secrets loaded from Vault")
	}

	// 4. Initialize Distributed Tracing
	if cfg.Tracing.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, serviceVersion, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 5. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 6. Initialize Cache (Redis, local fallback)
	appCache, err := cache.NewRedisCache(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-process cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 7. Initialize Message Queue
	var messageQueue queue.MessageQueue
	if cfg.RabbitMQ.Driver == "rabbitmq" {
		messageQueue, err = queue.NewRabbitMQQueue(cfg.RabbitMQ.URL, logger)
	} else {
		messageQueue, err = queue.NewNATSQueue(cfg.NATS.URL, cfg.NATS.MaxReconnects, cfg.NATS.ReconnectWait, logger)
	}
	if err != nil {
		logger.Fatal("Failed to connect to message broker", zap.Error(err))
	}
	defer messageQueue.Close()

	// 8. Initialize Repositories
	clientRepo := postgres.NewClientRepository(db, logger)
	projectRepo := postgres.NewProjectRepository(db, logger)
	productionRepo := postgres.NewProductionRepository(db, logger)
	alertRepo := postgres.NewAlertRepository(db, logger)
	userRepo := postgres.NewUserRepository(db, logger)

	// 9. Initialize Services (Business Logic Layer)
	clock := ports.RealClock()

	emailService, err := email.NewService(cfg.Notification.Email, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service", zap.Error(err))
	}

	authService := auth.NewService(userRepo, clock, cfg.JWT, logger)
	clientService := client.NewService(clientRepo, clock, logger)
	projectService := project.NewService(projectRepo, clientRepo, clock, logger)
	pipelineService := pipeline.NewService(projectRepo, messageQueue, clock, logger)
	analyticsService := analytics.NewService(productionRepo, cfg.Analytics, cfg.Pricing, clock, logger)
	alertService := alert.NewService(alertRepo, projectRepo, emailService, messageQueue, clock, cfg.Notification.OpsEmail, logger)
	productionService := production.NewService(productionRepo, projectRepo, alertService, messageQueue, clock, cfg.Pricing, logger)
	dashboardService := dashboard.NewService(projectRepo, clientRepo, appCache, cfg.Cache.DashboardStatsTTL, logger)

	// 10. Deposit billing reacts to pipeline events
	if cfg.Billing.Enabled {
		gateway := payment.NewStripeGateway(cfg.Billing.StripeSecretKey, logger)
		billingService := billing.NewService(gateway, messageQueue, cfg.Billing, logger)
		if err := billingService.Start(); err != nil {
			logger.Fatal("Failed to start billing worker", zap.Error(err))
		}
	}

	healthService := health.NewService(&health.Config{
		Version: serviceVersion,
		DB:      sqlDB,
		Cache:   appCache,
		NatsURL: cfg.NATS.URL,
	}, logger)

	// 11. Initialize WebSocket Hub (real-time dashboard and alert pushes)
	wsHub := wsAdapter.NewHub(logger)
	go wsHub.Run()

	// 12. Start the production ingest endpoint for site gateways
	ingestServer := ingest.NewServer(productionService, logger)
	go func() {
		logger.Info("Starting ingest WebSocket server", zap.Int("port", cfg.Ingest.Port))
		if err := ingestServer.Start(cfg.Ingest.Port); err != nil {
			logger.Fatal("Ingest server failed", zap.Error(err))
		}
	}()

	// 13. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	app.Use(middleware.Metrics())
	app.Use(middleware.CircuitBreaker(logger))

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(healthService.Health(c.UserContext()))
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ready := healthService.Ready(c.UserContext())
		if !ready.Ready {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ready)
		}
		return c.JSON(ready)
	})

	// Metrics endpoint for Prometheus
	if cfg.Prometheus.Enabled {
		metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		app.Get(cfg.Prometheus.Path, func(c *fiber.Ctx) error {
			metricsHandler(c.Context())
			return nil
		})
	}

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/demo-login", authHandler.DemoLogin)
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)

	// Client routes
	clientHandler := handlers.NewClientHandler(clientService, logger)
	protected.Post("/clients", clientHandler.Create)
	protected.Get("/clients", clientHandler.List)
	protected.Get("/clients/:id", clientHandler.Get)
	protected.Put("/clients/:id", clientHandler.Update)

	// Project and pipeline routes
	projectHandler := handlers.NewProjectHandler(projectService, pipelineService, dashboardService, wsHub, logger)
	protected.Post("/projects", projectHandler.Create)
	protected.Get("/projects", projectHandler.List)
	protected.Get("/pipeline/board", projectHandler.Board)
	protected.Get("/projects/:id", projectHandler.Get)
	protected.Put("/projects/:id", projectHandler.Update)
	protected.Post("/projects/:id/transition", projectHandler.Transition)

	// Production and analytics routes
	productionHandler := handlers.NewProductionHandler(productionService, analyticsService, logger)
	protected.Post("/projects/:id/production", productionHandler.Record)
	protected.Get("/projects/:id/production", productionHandler.History)
	protected.Get("/projects/:id/analytics", productionHandler.Summary)
	protected.Get("/analytics", productionHandler.Summary)

	// Alert routes
	alertHandler := handlers.NewAlertHandler(alertService, wsHub, logger)
	protected.Get("/alerts", alertHandler.List)
	protected.Get("/alerts/summary", alertHandler.Summary)
	protected.Post("/alerts/:id/resolve", alertHandler.Resolve)

	// Dashboard routes
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)

	// WebSocket routes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/updates", websocket.New(func(c *websocket.Conn) {
		userID := c.Query("userId", "guest")
		wsHub.AddClient(c, userID)
	}))

	// 14. Push new alerts to connected dashboards
	if err := messageQueue.Subscribe(domain.SubjectAlertCreated, func(data []byte) error {
		wsHub.BroadcastEvent(wsAdapter.Event{Type: "alert.created", Payload: json.RawMessage(data)})
		return nil
	}); err != nil {
		logger.Fatal("Failed to subscribe to alert events", zap.Error(err))
	}

	// 15. Initialize gRPC Server (health for internal infrastructure)
	grpcServer := grpcserver.NewGRPCServer(logger)
	go func() {
		logger.Info("Starting gRPC Server", zap.Int("port", cfg.GRPC.Port))
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
		if err != nil {
			logger.Fatal("Failed to listen for gRPC", zap.Error(err))
		}
		grpcServer.SetServing(true)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("gRPC Server failed", zap.Error(err))
		}
	}()

	// 16. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 17. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	grpcServer.SetServing(false)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("HTTP server forced to shutdown", zap.Error(err))
	}
	if err := ingestServer.Stop(ctx); err != nil {
		logger.Error("Ingest server forced to shutdown", zap.Error(err))
	}
	grpcServer.Stop()

	logger.Info("Server exited gracefully")
}
