package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lasercraft/internal/catalog"
	"lasercraft/internal/commons"
	"lasercraft/internal/config"
	"lasercraft/internal/infrastructure/logger"
	infraMysql "lasercraft/internal/infrastructure/mysql"
	"lasercraft/internal/intake"
	"lasercraft/internal/server"
	"lasercraft/internal/storage"
	"lasercraft/internal/storage/memory"
	storeMysql "lasercraft/internal/storage/mysql"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	store, cleanup, err := newStorage(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("initializing storage", zap.Error(err))
	}
	defer cleanup()

	catalogCtrl := catalog.NewController(store, zapLogger)
	intakeCtrl := intake.NewController(store, zapLogger)

	router := server.NewRouter(catalogCtrl, intakeCtrl, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func newStorage(cfg *config.Config, zapLogger *zap.Logger) (storage.Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMySQL:
		db, err := infraMysql.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store, err := storeMysql.New(context.Background(), db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		zapLogger.Info("using mysql storage", zap.String("host", cfg.Database.Host))
		return store, func() { db.Close() }, nil
	default:
		zapLogger.Info("using in-memory storage")
		return memory.New(), func() {}, nil
	}
}
