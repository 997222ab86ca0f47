package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPaymentRepository struct {
	col *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{col: db.Collection("payments")}
}

func (m *MongoPaymentRepository) Insert(ctx context.Context, p *model.Payment) (string, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *MongoPaymentRepository) FindByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	opts := options.Find().SetSort(bson.M{"paid_at": -1})
	cur, err := m.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Payment](ctx, cur)
}

func (m *MongoPaymentRepository) FindAll(ctx context.Context) ([]*model.Payment, error) {
	opts := options.Find().SetSort(bson.M{"paid_at": -1})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Payment](ctx, cur)
}
