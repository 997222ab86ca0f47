package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRiderRepository struct {
	col *mongo.Collection
}

func NewMongoRiderRepository(db *mongo.Database) *MongoRiderRepository {
	return &MongoRiderRepository{col: db.Collection("riders")}
}

func (m *MongoRiderRepository) Insert(ctx context.Context, r *model.Rider) (string, error) {
	res, err := m.col.InsertOne(ctx, r)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *MongoRiderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Rider, error) {
	var r model.Rider
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &r, err
}

func (m *MongoRiderRepository) FindByEmail(ctx context.Context, email string) (*model.Rider, error) {
	var r model.Rider
	err := m.col.FindOne(ctx, bson.M{"email": email}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &r, err
}

func (m *MongoRiderRepository) FindByStatus(ctx context.Context, status string) ([]*model.Rider, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Rider](ctx, cur)
}

// FindAvailable busca riders aprobados y libres, opcionalmente del
// distrito del receptor.
func (m *MongoRiderRepository) FindAvailable(ctx context.Context, district string) ([]*model.Rider, error) {
	filter := bson.M{
		"status":      model.RiderAvailable,
		"work_status": model.WorkAvailable,
	}
	if district != "" {
		filter["district"] = district
	}
	cur, err := m.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return all[model.Rider](ctx, cur)
}

// SearchActive lista riders en servicio (available o busy), con búsqueda
// parcial por nombre o email.
func (m *MongoRiderRepository) SearchActive(ctx context.Context, q string) ([]*model.Rider, error) {
	filter := bson.M{"status": bson.M{"$in": []string{model.RiderAvailable, model.RiderBusy}}}
	if q != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"email": bson.M{"$regex": q, "$options": "i"}},
		}
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Rider](ctx, cur)
}

func (m *MongoRiderRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRiderRepository) SetWorkStatus(ctx context.Context, id primitive.ObjectID, workStatus string) error {
	return m.Update(ctx, id, bson.M{"work_status": workStatus})
}

func (m *MongoRiderRepository) IncDeliveries(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"deliveries": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
