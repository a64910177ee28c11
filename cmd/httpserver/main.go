package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tronefilms/httpserver"
	"tronefilms/mongodb"
	"tronefilms/movie"
	"tronefilms/pkg/config"
	"tronefilms/pkg/logger"
	"tronefilms/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
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

	if cfg.SentryDSN != "" && cfg.AppEnv != "local" {
		err = sentrygo.Init(sentrygo.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.AppEnv,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Fatalw("cannot init sentry", "error", err)
		}
		defer sentrygo.Flush(sentry.FlushTime)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.NewClient(ctx, mongodb.Options{
		ConnString:     cfg.DB.ConnString,
		DBName:         cfg.DB.Name,
		ConnectTimeout: cfg.DB.ConnectTimeout,
		MaxPoolSize:    cfg.DB.MaxPoolSize,
	})
	if err != nil {
		log.Fatalw("cannot connect to mongodb", "error", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Errorw("cannot close mongodb client", "error", err)
		}
	}()

	movieService := movie.NewUsecase(mongodb.NewMovieRepository(db, cfg.DB.Collection))

	server, err := httpserver.New(
		httpserver.WithPort(cfg.Port),
		httpserver.WithAllowOrigins(cfg.AllowOrigins),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movieService),
		httpserver.WithHealth(db),
	)
	if err != nil {
		log.Fatalw("cannot create http server", "error", err)
	}

	if err := server.Run(ctx); err != nil {
		log.Errorw("server stopped with error", "error", err)
		return
	}
	log.Info("server stopped")
}
