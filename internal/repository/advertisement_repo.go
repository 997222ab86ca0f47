package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAdvertisementRepository struct {
	col *mongo.Collection
}

func NewMongoAdvertisementRepository(db *mongo.Database) *MongoAdvertisementRepository {
	return &MongoAdvertisementRepository{col: db.Collection("advertisements")}
}

func (m *MongoAdvertisementRepository) Insert(ctx context.Context, a *model.Advertisement) (string, error) {
	res, err := m.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindApproved es la vitrina pública.
func (m *MongoAdvertisementRepository) FindApproved(ctx context.Context) ([]*model.Advertisement, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, bson.M{"status": model.ApprovalApproved}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Advertisement](ctx, cur)
}

func (m *MongoAdvertisementRepository) FindAll(ctx context.Context) ([]*model.Advertisement, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Advertisement](ctx, cur)
}

func (m *MongoAdvertisementRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoAdvertisementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
