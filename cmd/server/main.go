package main

import (
	"context"
	"os"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/handler"
	"github.com/devfolio/internal/logger"
	"github.com/devfolio/internal/router"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	log := logger.Get()

	gin.SetMode(cfg.GinMode)

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	var uploader service.MediaUploader
	if cfg.MediaBackend == "s3" {
		s3Uploader, err := service.NewS3Uploader(context.Background(),
			cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Region, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure s3 uploads")
		}
		uploader = s3Uploader
	} else {
		uploader = service.NewLocalUploader(cfg.UploadDir, cfg.UploadURLPath)
	}

	var cache service.Cache
	if cfg.RedisURL != "" {
		redisCache, err := service.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisCache.Close()
		cache = redisCache
	} else {
		cache = service.NewMemoryCache()
	}

	api := handler.NewAPI(gdb, cfg, uploader, cache)
	engine := router.Setup(api, cfg)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := engine.Run(cfg.ListenAddr); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
