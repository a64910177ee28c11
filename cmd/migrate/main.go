package main

import (
	"context"

	"tronefilms/mongodb"
	"tronefilms/pkg/config"
	"tronefilms/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("cannot load config", "error", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("cannot build logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	db, err := mongodb.NewClient(ctx, mongodb.Options{
		ConnString:     cfg.DB.ConnString,
		DBName:         cfg.DB.Name,
		ConnectTimeout: cfg.DB.ConnectTimeout,
	})
	if err != nil {
		log.Fatalw("cannot connect to mongodb", "error", err)
	}
	defer func() { _ = db.Close(context.Background()) }()

	names, err := mongodb.NewMovieRepository(db, cfg.DB.Collection).EnsureIndexes(ctx)
	if err != nil {
		log.Errorw("cannot create indexes", "error", err)
		return
	}

	log.Infow("indexes ensured", "collection", cfg.DB.Collection, "indexes", names)
}
