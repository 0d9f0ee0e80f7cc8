package main

import (
	"Vitrine/internal/blobstore"
	"Vitrine/internal/config"
	"Vitrine/internal/handlers"
	"Vitrine/internal/middleware"
	"Vitrine/internal/repo"
	"Vitrine/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// blob-хранилище: S3 по умолчанию, memory для локального запуска
	var blobs blobstore.BlobStore
	switch cfg.StorageDriver {
	case "memory":
		blobs = blobstore.NewMemory("")
	default:
		blobs, err = blobstore.NewS3Store(cfg.S3Region, cfg.S3Bucket, cfg.S3Endpoint)
		if err != nil {
			sugar.Fatalw("failed to initialize blob store", "error", err)
		}
	}

	itemRepo := repo.NewItemRepository(gormDB)
	statsRepo := repo.NewStatsRepository(gormDB)

	itemService := service.NewItemService(itemRepo, blobs, sugar, cfg.CallTimeout())
	visitService := service.NewVisitService(statsRepo, sugar, cfg.CallTimeout())

	h := handlers.NewHandler(itemService, visitService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"StorageDriver", cfg.StorageDriver,
		"S3Bucket", cfg.S3Bucket,
		"UploadDir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
