package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"tronefilms/mongodb"
	"tronefilms/movie"
	"tronefilms/pkg/config"
	"tronefilms/pkg/logger"

	"go.uber.org/zap"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

func main() {
	var (
		csvPath     string
		fixturePath string
		zipURL      string
		limit       int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	flag.StringVar(&fixturePath, "fixture", "", "Path to a YAML list of movies (skip MovieLens)")
	flag.StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	flag.IntVar(&limit, "limit", 0, "Limit number of movies to import (0 = all)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("load config failed", "error", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("cannot build logger", "error", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	movies, err := loadMovies(ctx, log, fixturePath, csvPath, zipURL, limit)
	if err != nil {
		log.Fatalw("cannot load movies", "error", err)
	}

	db, err := mongodb.NewClient(ctx, mongodb.Options{
		ConnString:     cfg.DB.ConnString,
		DBName:         cfg.DB.Name,
		ConnectTimeout: cfg.DB.ConnectTimeout,
		MaxPoolSize:    cfg.DB.MaxPoolSize,
	})
	if err != nil {
		log.Fatalw("cannot connect to mongodb", "error", err)
	}
	defer func() { _ = db.Close(context.Background()) }()

	repo := mongodb.NewMovieRepository(db, cfg.DB.Collection)
	count, err := importMovies(ctx, repo, movies)
	if err != nil {
		log.Fatalw("import failed", "error", err, "imported", count)
	}

	log.Infow("import completed", "movies", count, "collection", cfg.DB.Collection)
}

func loadMovies(ctx context.Context, log *zap.SugaredLogger, fixturePath, csvPath, zipURL string, limit int) ([]movie.Movie, error) {
	if fixturePath != "" {
		log.Infow("reading fixture", "path", fixturePath)
		return readFixture(fixturePath, limit)
	}

	if csvPath == "" {
		log.Infow("downloading dataset", "url", zipURL)
		path, cleanup, err := downloadAndExtract(ctx, zipURL)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		csvPath = path
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readMovieLens(file, limit)
}

const batchSize = 500

type movieInserter interface {
	InsertMany(ctx context.Context, movies []movie.Movie) (int, error)
}

func importMovies(ctx context.Context, repo movieInserter, movies []movie.Movie) (int, error) {
	count := 0
	for start := 0; start < len(movies); start += batchSize {
		end := min(start+batchSize, len(movies))
		n, err := repo.InsertMany(ctx, movies[start:end])
		count += n
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
