// Package mongo contains the concrete implementation of the persistence layer
// backed by a MongoDB document store.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 5 * time.Second

// Collection names used by the repositories.
const (
	usersCollection    = "users"
	productsCollection = "products"
	ordersCollection   = "orders"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle shared by the repositories.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration must be provided")
	}

	connectTimeout := params.Config.Mongo.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			pingCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			disconnectCtx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(disconnectCtx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
