package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/coralstream/catalog/internal/config"
	"github.com/coralstream/catalog/internal/infrastructure/persistence/gorm"
	"github.com/coralstream/catalog/pkg/logger"
)

func main() {
	cfg, err := config.Load("catalog-migrate")
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	zapLog, err := logger.NewZapLogger(cfg.Server.Environment == "development")
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	log := zapLog.Zap()
	defer log.Sync()

	db, cleanup, err := gorm.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer cleanup()

	if err := gorm.AutoMigrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migration complete")
}
