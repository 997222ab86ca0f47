package repository

import (
	"context"

	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

func (m *MongoProductRepository) Insert(ctx context.Context, p *model.Product) (string, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (m *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	var p model.Product
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &p, err
}

// FindApproved es el catálogo público: solo productos aprobados, con
// filtro por categoría y búsqueda parcial por nombre.
func (m *MongoProductRepository) FindApproved(ctx context.Context, category, search string) ([]*model.Product, error) {
	filter := bson.M{"status": model.ApprovalApproved}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Product](ctx, cur)
}

func (m *MongoProductRepository) FindByVendor(ctx context.Context, vendorEmail string) ([]*model.Product, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, bson.M{"vendor_email": vendorEmail}, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Product](ctx, cur)
}

// FindAll es la vista admin; status vacío trae todo.
func (m *MongoProductRepository) FindAll(ctx context.Context, status string) ([]*model.Product, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return all[model.Product](ctx, cur)
}

// Update modifica un producto solo si pertenece al vendor.
func (m *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, vendorEmail string, fields bson.M) error {
	filter := bson.M{"_id": id, "vendor_email": vendorEmail}
	res, err := m.col.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID, vendorEmail string) error {
	filter := bson.M{"_id": id}
	if vendorEmail != "" {
		filter["vendor_email"] = vendorEmail
	}
	res, err := m.col.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProductRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoProductRepository) PushReview(ctx context.Context, id primitive.ObjectID, r model.Review) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"reviews": r}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
