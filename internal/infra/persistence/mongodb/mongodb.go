// Package mongodb contains the concrete implementation of the persistence
// layer on top of the MongoDB document store.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"

	"gatehouse/config"
	"gatehouse/internal/domain/lifecycle"
)

const (
	usersCollection    = "users"
	contactsCollection = "contacts"

	defaultConnectTimeout = 10 * time.Second
)

// Params defines the dependencies for the database handle.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to the document store, verifies the connection, ensures the
// uniqueness indexes the domain relies on, and registers a shutdown hook.
// The handle is created before the server starts serving and torn down after
// it stops.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(cfg.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	params.Logger.Info("Connected to MongoDB",
		slog.String("database", cfg.Database),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from MongoDB")

			return errors.Wrap(client.Disconnect(shutdownCtx), "failed to disconnect from mongodb")
		},
	})

	return db, nil
}

// ensureIndexes creates the unique indexes on users.username and users.email.
// The store enforces these constraints, making a concurrent duplicate insert
// impossible regardless of application-level checks.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	return nil
}
