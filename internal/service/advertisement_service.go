package service

import (
	"context"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de publicidades
type AdvertisementRepository interface {
	Insert(ctx context.Context, a *model.Advertisement) (string, error)
	FindApproved(ctx context.Context) ([]*model.Advertisement, error)
	FindAll(ctx context.Context) ([]*model.Advertisement, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AdvertisementService struct {
	repo AdvertisementRepository
}

func NewAdvertisementService(r AdvertisementRepository) *AdvertisementService {
	return &AdvertisementService{repo: r}
}

func (s *AdvertisementService) Create(ctx context.Context, req dto.CreateAdvertisementRequest) (*model.Advertisement, error) {
	a := &model.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		ProductID:   req.ProductID,
		VendorEmail: req.VendorEmail,
		Status:      model.ApprovalPending,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID, _ = primitive.ObjectIDFromHex(id)
	return a, nil
}

func (s *AdvertisementService) PublicList(ctx context.Context) ([]*model.Advertisement, error) {
	return s.repo.FindApproved(ctx)
}

func (s *AdvertisementService) AdminList(ctx context.Context) ([]*model.Advertisement, error) {
	return s.repo.FindAll(ctx)
}

func (s *AdvertisementService) Moderate(ctx context.Context, id primitive.ObjectID, status string) error {
	if !model.IsValidApprovalStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *AdvertisementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
