package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/Negocio-api/pkg/config"
)

// NewDatabase conecta a MongoDB con el registry que mapea decimal.Decimal a
// Decimal128 y devuelve el handle de la base más la función de desconexión.
func NewDatabase(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, func(context.Context) error, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(25).
		SetRegistry(Registry())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return client.Database(cfg.Database), client.Disconnect, nil
}
