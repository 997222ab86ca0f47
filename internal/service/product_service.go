package service

import (
	"context"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de productos
type ProductRepository interface {
	Insert(ctx context.Context, p *model.Product) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	FindApproved(ctx context.Context, category, search string) ([]*model.Product, error)
	FindByVendor(ctx context.Context, vendorEmail string) ([]*model.Product, error)
	FindAll(ctx context.Context, status string) ([]*model.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, vendorEmail string, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID, vendorEmail string) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	PushReview(ctx context.Context, id primitive.ObjectID, r model.Review) error
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(r ProductRepository) *ProductService {
	return &ProductService{repo: r}
}

// Create da de alta el producto en pending; recién aparece en el
// catálogo público cuando un admin lo aprueba.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		VendorEmail: req.VendorEmail,
		Status:      model.ApprovalPending,
		Reviews:     []model.Review{},
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID, _ = primitive.ObjectIDFromHex(id)
	return p, nil
}

func (s *ProductService) PublicList(ctx context.Context, category, search string) ([]*model.Product, error) {
	return s.repo.FindApproved(ctx, category, search)
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) VendorList(ctx context.Context, vendorEmail string) ([]*model.Product, error) {
	return s.repo.FindByVendor(ctx, vendorEmail)
}

// VendorUpdate: el filtro del repo asegura que el producto sea del vendor.
func (s *ProductService) VendorUpdate(ctx context.Context, id primitive.ObjectID, vendorEmail string, req dto.UpdateProductRequest) error {
	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Price > 0 {
		fields["price"] = req.Price
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.Image != "" {
		fields["image"] = req.Image
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.Update(ctx, id, vendorEmail, fields)
}

func (s *ProductService) VendorDelete(ctx context.Context, id primitive.ObjectID, vendorEmail string) error {
	return s.repo.Delete(ctx, id, vendorEmail)
}

func (s *ProductService) AdminList(ctx context.Context, status string) ([]*model.Product, error) {
	return s.repo.FindAll(ctx, status)
}

func (s *ProductService) Moderate(ctx context.Context, id primitive.ObjectID, status string) error {
	if !model.IsValidApprovalStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *ProductService) AddReview(ctx context.Context, id primitive.ObjectID, req dto.AddReviewRequest) error {
	return s.repo.PushReview(ctx, id, model.Review{
		UserEmail: req.UserEmail,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *ProductService) Reviews(ctx context.Context, id primitive.ObjectID) ([]model.Review, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Reviews, nil
}
