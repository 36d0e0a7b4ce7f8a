package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/brewops-lot-service/config"
	"github.com/fekuna/brewops-lot-service/migrations"
	lotv1 "github.com/fekuna/brewops-lot-service/pkg/api/lotv1"
	"github.com/fekuna/brewops-lot-service/pkg/broker"
	"github.com/fekuna/brewops-lot-service/pkg/cache"
	"github.com/fekuna/brewops-lot-service/pkg/database"
	"github.com/fekuna/brewops-lot-service/pkg/logger"
	"github.com/fekuna/brewops-lot-service/pkg/middleware"

	alertArchiver "github.com/fekuna/brewops-lot-service/internal/alert/archiver"
	alertH "github.com/fekuna/brewops-lot-service/internal/alert/handler"
	alertListenerPkg "github.com/fekuna/brewops-lot-service/internal/alert/listener"
	alertRepoPkg "github.com/fekuna/brewops-lot-service/internal/alert/repository"
	alertUCPkg "github.com/fekuna/brewops-lot-service/internal/alert/usecase"

	"github.com/fekuna/brewops-lot-service/internal/availability"
	availCache "github.com/fekuna/brewops-lot-service/internal/availability/cache"
	availUCPkg "github.com/fekuna/brewops-lot-service/internal/availability/usecase"

	lotH "github.com/fekuna/brewops-lot-service/internal/lot/handler"
	lotListenerPkg "github.com/fekuna/brewops-lot-service/internal/lot/listener"
	lotRepoPkg "github.com/fekuna/brewops-lot-service/internal/lot/repository"
	lotUCPkg "github.com/fekuna/brewops-lot-service/internal/lot/usecase"

	"github.com/fekuna/brewops-lot-service/internal/document"
	"github.com/fekuna/brewops-lot-service/internal/metrics"
	httpserver "github.com/fekuna/brewops-lot-service/internal/server/http"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Connect to Database
	db, err := openDatabase(cfg)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.Storage.Driver))

	if cfg.Storage.AutoMigrate {
		if err := migrations.Up(ctx, db, migrations.DialectFor(db.DriverName())); err != nil {
			appLogger.Fatal("Could not apply migrations", zap.Error(err))
		}
		appLogger.Info("Database migrations applied")
	}

	// 4. Metrics
	var (
		appMetrics *metrics.Metrics
		gatherer   prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		appMetrics = metrics.New(registry)
		gatherer = registry
	}

	// 5. Initialize Repositories
	lotRepo := lotRepoPkg.NewSQLRepository(db)
	alertRepo := alertRepoPkg.NewSQLRepository(db)

	// 6. Initialize Redis
	var (
		redisClient    *cache.RedisClient
		snapshotCache  availability.Cache
		lotInvalidator lotUCPkg.Invalidator
		archiveLocker  alertArchiver.Locker
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

		sc := availCache.NewSnapshotCache(redisClient, cfg.Redis.AvailabilityTTL)
		snapshotCache = sc
		lotInvalidator = sc
		archiveLocker = redisClient
	}

	// 7. Document links
	docStore, err := openDocumentStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Could not initialize document store", zap.Error(err))
	}
	signer := document.NewSigner(docStore, cfg.Documents.PresignExpiry)

	// 8. Initialize UseCases
	lotUC := lotUCPkg.NewLotUseCase(lotRepo, lotInvalidator, appLogger)
	alertUC := alertUCPkg.NewAlertUseCase(alertRepo, appMetrics, appLogger)
	severity := alertUCPkg.NewSeverityAggregator(alertRepo, appLogger)
	availUC := availUCPkg.NewAvailabilityUseCase(lotRepo, severity, snapshotCache, appMetrics, appLogger)

	// 9. Background workers
	if cfg.Kafka.Enabled {
		lotConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.LotTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer lotConsumer.Close()
		alertConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.AlertTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer alertConsumer.Close()
		appLogger.Info("Connected to Kafka Consumers",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("lot_topic", cfg.Kafka.LotTopic),
			zap.String("alert_topic", cfg.Kafka.AlertTopic),
		)

		go lotListenerPkg.NewLotListener(lotConsumer, lotUC, appLogger).Start(ctx)
		go alertListenerPkg.NewAlertListener(alertConsumer, alertUC, appLogger).Start(ctx)
	}

	archiver := alertArchiver.New(alertRepo, alertUC, archiveLocker, alertArchiver.Config{
		Interval:  cfg.Archive.Interval,
		Retention: cfg.Archive.Retention,
		BatchSize: cfg.Archive.BatchSize,
	}, appMetrics, appLogger)
	go archiver.Start(ctx)

	// 10. Initialize Handlers
	lotHandler := lotH.NewLotHandler(lotUC, availUC, appLogger)
	alertHandler := alertH.NewAlertHandler(alertUC, severity, signer, appLogger)

	// 11. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(appLogger),
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)

	lotv1.RegisterLotServiceServer(grpcServer, lotHandler)
	lotv1.RegisterAlertServiceServer(grpcServer, alertHandler)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 12. Start HTTP Server
	httpServer := httpserver.NewServer(httpserver.Deps{
		Availability: availUC,
		Alerts:       alertUC,
		Severity:     severity,
		Signer:       signer,
		Gatherer:     gatherer,
		Health:       db.PingContext,
	}, appLogger)

	appLogger.Info("Starting HTTP server", zap.String("addr", cfg.Server.HTTPAddr))
	go func() {
		if err := httpServer.Listen(cfg.Server.HTTPAddr); err != nil {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("HTTP server shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Storage.Driver == "sqlite" {
		return database.NewSQLite(cfg.Storage.SQLitePath)
	}
	return database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
}

func openDocumentStore(ctx context.Context, cfg *config.Config) (document.Store, error) {
	if cfg.Documents.Driver == document.DriverS3 {
		return document.NewS3Store(ctx, document.S3Config{
			Region:          cfg.Documents.S3Region,
			Bucket:          cfg.Documents.S3Bucket,
			Endpoint:        cfg.Documents.S3Endpoint,
			AccessKeyID:     cfg.Documents.AccessKeyID,
			SecretAccessKey: cfg.Documents.SecretAccessKey,
			PathStyle:       cfg.Documents.S3PathStyle,
		})
	}
	return document.NewMemoryStore(cfg.Documents.BaseURL), nil
}
