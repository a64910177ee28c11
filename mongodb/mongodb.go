package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Options struct {
	ConnString     string
	DBName         string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// Database is the process wide handle on one logical database. The
// underlying client pools connections, so a single Database is shared by
// all requests and closed once on shutdown.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewClient(ctx context.Context, opts Options) (*Database, error) {
	if strings.TrimSpace(opts.ConnString) == "" {
		return nil, errors.New("mongodb: connection string is required")
	}
	if strings.TrimSpace(opts.DBName) == "" {
		return nil, errors.New("mongodb: database name is required")
	}

	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}

	clientOpts := options.Client().ApplyURI(opts.ConnString)
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(opts.DBName),
	}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping reports whether the primary is reachable.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping: %w", err)
	}
	return nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
