package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moso_shop/internal/models"
)

// Mongo reads the catalogue from a MongoDB products collection. It is
// only used as a startup-time source; the shop itself never writes.
type Mongo struct {
	Products *mongo.Collection
}

// ConnectMongo dials the given URL and returns a catalogue source backed
// by the shop database's products collection.
func ConnectMongo(ctx context.Context, url string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{Products: client.Database("moso").Collection("products")}, nil
}

// GetAllProducts loads every catalogue record.
func (m *Mongo) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	cur, err := m.Products.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &products)
	return products, err
}
