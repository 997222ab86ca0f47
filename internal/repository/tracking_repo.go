package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Log append-only: nunca se actualiza ni borra un evento.
type MongoTrackingRepository struct {
	col *mongo.Collection
}

func NewMongoTrackingRepository(db *mongo.Database) *MongoTrackingRepository {
	return &MongoTrackingRepository{col: db.Collection("trackings")}
}

func (m *MongoTrackingRepository) Insert(ctx context.Context, e *model.TrackingEvent) (string, error) {
	res, err := m.col.InsertOne(ctx, e)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByTrackingID devuelve el historial en orden cronológico ascendente.
func (m *MongoTrackingRepository) FindByTrackingID(ctx context.Context, trackingID string) ([]*model.TrackingEvent, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cur, err := m.col.Find(ctx, bson.M{"tracking_id": trackingID}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.TrackingEvent](ctx, cur)
}
