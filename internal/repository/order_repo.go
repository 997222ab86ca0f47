package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Insert(ctx context.Context, o *model.Order) (string, error) {
	res, err := m.col.InsertOne(ctx, o)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var o model.Order
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &o, err
}

func (m *MongoOrderRepository) FindByBuyer(ctx context.Context, buyerEmail string) ([]*model.Order, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, bson.M{"buyer_email": buyerEmail}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Order](ctx, cur)
}

func (m *MongoOrderRepository) FindAll(ctx context.Context, status string) ([]*model.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Order](ctx, cur)
}

func (m *MongoOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Accept pasa la orden a accepted solo si sigue pendiente; el filtro
// condicional evita aceptar dos veces.
func (m *MongoOrderRepository) Accept(ctx context.Context, id primitive.ObjectID, acceptedBy string) error {
	filter := bson.M{"_id": id, "status": model.OrderPending}
	update := bson.M{"$set": bson.M{"status": model.OrderAccepted, "accepted_by": acceptedBy}}
	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
