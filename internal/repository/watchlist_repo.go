package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoWatchlistRepository struct {
	col *mongo.Collection
}

func NewMongoWatchlistRepository(db *mongo.Database) *MongoWatchlistRepository {
	return &MongoWatchlistRepository{col: db.Collection("watchlists")}
}

func (m *MongoWatchlistRepository) Insert(ctx context.Context, w *model.WatchlistItem) (string, error) {
	res, err := m.col.InsertOne(ctx, w)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByEmailAndProduct detecta el duplicado (email, productId).
func (m *MongoWatchlistRepository) FindByEmailAndProduct(ctx context.Context, email, productID string) (*model.WatchlistItem, error) {
	var w model.WatchlistItem
	err := m.col.FindOne(ctx, bson.M{"email": email, "product_id": productID}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &w, err
}

func (m *MongoWatchlistRepository) FindByEmail(ctx context.Context, email string) ([]*model.WatchlistItem, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.WatchlistItem](ctx, cur)
}

func (m *MongoWatchlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
