package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcatalog "github.com/coralstream/catalog/internal/application/catalog"
	appvideo "github.com/coralstream/catalog/internal/application/video"
	"github.com/coralstream/catalog/internal/config"
	"github.com/coralstream/catalog/internal/domain/video"
	"github.com/coralstream/catalog/internal/infrastructure/events/kafka"
	"github.com/coralstream/catalog/internal/infrastructure/events/nats"
	"github.com/coralstream/catalog/internal/infrastructure/persistence/gorm"
	"github.com/coralstream/catalog/internal/infrastructure/rest"
	"github.com/coralstream/catalog/internal/infrastructure/storage"
	"github.com/coralstream/catalog/pkg/interfaces"
	"github.com/coralstream/catalog/pkg/logger"
)

const serviceName = "catalog-service"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	zapLog, err := logger.NewZapLogger(cfg.Server.Environment == "development")
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	log := zapLog.Zap()
	defer log.Sync()

	log.Info("starting service",
		zap.String("service", serviceName),
		zap.String("environment", cfg.Server.Environment),
	)

	db, dbCleanup, err := gorm.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer dbCleanup()

	if err := gorm.AutoMigrate(db); err != nil {
		log.Fatal("failed to migrate models", zap.Error(err))
	}

	natsClient, natsCleanup, err := nats.NewClient(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize NATS", zap.Error(err))
	}
	defer natsCleanup()

	eventBus, busCleanup, err := buildEventBus(cfg, natsClient, log)
	if err != nil {
		log.Fatal("failed to initialize event bus", zap.Error(err))
	}
	defer busCleanup()

	mediaStorage, err := buildMediaStorage(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize media storage", zap.Error(err))
	}

	videoRepo := gorm.NewVideoRepository(db)
	categoryRepo := gorm.NewCategoryRepository(db)
	genreRepo := gorm.NewGenreRepository(db)
	castMemberRepo := gorm.NewCastMemberRepository(db)

	videoService := appvideo.NewService(videoRepo, mediaStorage, eventBus, zapLog)
	categoryService := appcatalog.NewCategoryService(categoryRepo, zapLog)
	genreService := appcatalog.NewGenreService(genreRepo, zapLog)
	castMemberService := appcatalog.NewCastMemberService(castMemberRepo, zapLog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	encoderConsumer := nats.NewEncoderStatusConsumer(natsClient, videoService, log)
	if err := encoderConsumer.Start(ctx); err != nil {
		log.Fatal("failed to start encoder consumer", zap.Error(err))
	}

	apiServer := rest.NewServer(videoService, categoryService, genreService, castMemberService, log)
	router := apiServer.Router()
	router.GET("/health", func(c *gin.Context) {
		if err := natsClient.Health(); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.String(http.StatusOK, "OK")
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Info("starting HTTP server", zap.Int("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down service")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTime)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", zap.Error(err))
	}

	log.Info("service shutdown complete")
}

func buildEventBus(cfg *config.Config, natsClient *nats.Client, log *zap.Logger) (interfaces.EventBus, func(), error) {
	switch cfg.Server.Broker {
	case "kafka":
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicMedia)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := publisher.Close(); err != nil {
				log.Error("failed to close kafka publisher", zap.Error(err))
			}
		}
		return publisher, cleanup, nil
	default:
		return nats.NewPublisher(natsClient, log), func() {}, nil
	}
}

func buildMediaStorage(cfg *config.Config, log *zap.Logger) (video.MediaStorage, error) {
	switch cfg.Storage.Type {
	case "s3":
		return storage.NewS3Storage(cfg.Storage.S3Config.Bucket, "", cfg.Storage.S3Config.Region, log)
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalPath, log)
	}
}
