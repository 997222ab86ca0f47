package repository

import (
	"context"
	"time"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoParcelRepository struct {
	col *mongo.Collection
}

func NewMongoParcelRepository(db *mongo.Database) *MongoParcelRepository {
	return &MongoParcelRepository{col: db.Collection("parcels")}
}

// ParcelFilter: filtros opcionales del listado. Campo vacío = sin filtro.
type ParcelFilter struct {
	CreatedBy      string
	DeliveryStatus string
	PaymentStatus  string
	District       string
}

func (m *MongoParcelRepository) Insert(ctx context.Context, p *model.Parcel) (string, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *MongoParcelRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Parcel, error) {
	var p model.Parcel
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &p, err
}

// Find lista parcels ordenados por fecha de creación descendente.
func (m *MongoParcelRepository) Find(ctx context.Context, f ParcelFilter) ([]*model.Parcel, error) {
	filter := bson.M{}
	if f.CreatedBy != "" {
		filter["created_by"] = f.CreatedBy
	}
	if f.DeliveryStatus != "" {
		filter["delivery_status"] = f.DeliveryStatus
	}
	if f.PaymentStatus != "" {
		filter["payment_status"] = f.PaymentStatus
	}
	if f.District != "" {
		filter["receiver_district"] = f.District
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Parcel](ctx, cur)
}

// FindByAssignedRider lista parcels del rider, opcionalmente acotado a
// un conjunto de estados de entrega.
func (m *MongoParcelRepository) FindByAssignedRider(ctx context.Context, riderEmail string, statuses []string) ([]*model.Parcel, error) {
	filter := bson.M{"assigned_rider_email": riderEmail}
	if len(statuses) > 0 {
		filter["delivery_status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Parcel](ctx, cur)
}

func (m *MongoParcelRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoParcelRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, deliveredAt *time.Time) error {
	set := bson.M{"delivery_status": status}
	if deliveredAt != nil {
		set["delivered_at"] = *deliveredAt
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Patch aplica un update parcial de campos editables.
func (m *MongoParcelRepository) Patch(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoParcelRepository) AssignRider(ctx context.Context, id primitive.ObjectID, riderID, riderEmail, riderName string) error {
	update := bson.M{"$set": bson.M{
		"delivery_status":      model.ParcelRiderAssigned,
		"assigned_rider_id":    riderID,
		"assigned_rider_email": riderEmail,
		"assigned_rider_name":  riderName,
	}}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoParcelRepository) MarkPaid(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"payment_status": model.PaymentPaid}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CashOut marca el cobro del rider con un update condicional: solo
// matchea si cashed_out no fue seteado antes. Es el guard at-most-once
// contra el doble cobro concurrente.
func (m *MongoParcelRepository) CashOut(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) error {
	filter := bson.M{
		"_id":        id,
		"cashed_out": bson.M{"$ne": true},
	}
	update := bson.M{"$set": bson.M{
		"cashed_out":      true,
		"cashed_out_at":   at,
		"cash_out_amount": amount,
	}}
	res, err := m.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByDeliveryStatus agrupa parcels por estado de entrega.
func (m *MongoParcelRepository) CountByDeliveryStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$delivery_status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cur, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.Status] = row.Count
	}
	return out, cur.Err()
}
