package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoNotificationRepository struct {
	col *mongo.Collection
}

func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{col: db.Collection("notifications")}
}

func (m *MongoNotificationRepository) Insert(ctx context.Context, n *model.Notification) (string, error) {
	res, err := m.col.InsertOne(ctx, n)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Find es el mailbox: por rol destino y opcionalmente por email destino.
func (m *MongoNotificationRepository) Find(ctx context.Context, toRole, toEmail string) ([]*model.Notification, error) {
	filter := bson.M{}
	if toRole != "" {
		filter["to_role"] = toRole
	}
	if toEmail != "" {
		filter["to_email"] = toEmail
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Notification](ctx, cur)
}

func (m *MongoNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": model.NotificationRead}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
