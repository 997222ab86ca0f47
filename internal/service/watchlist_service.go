package service

import (
	"context"
	"errors"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"
	"parcel-delivery-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de watchlist
type WatchlistRepository interface {
	Insert(ctx context.Context, w *model.WatchlistItem) (string, error)
	FindByEmailAndProduct(ctx context.Context, email, productID string) (*model.WatchlistItem, error)
	FindByEmail(ctx context.Context, email string) ([]*model.WatchlistItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type WatchlistService struct {
	repo WatchlistRepository
}

func NewWatchlistService(r WatchlistRepository) *WatchlistService {
	return &WatchlistService{repo: r}
}

// Add rechaza el par (email, productId) duplicado con ErrDuplicateWatch.
func (s *WatchlistService) Add(ctx context.Context, req dto.AddWatchlistRequest) (*model.WatchlistItem, error) {
	existing, err := s.repo.FindByEmailAndProduct(ctx, req.Email, req.ProductID)
	if err == nil && existing != nil {
		return existing, ErrDuplicateWatch
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	w := &model.WatchlistItem{
		Email:       req.Email,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, w)
	if err != nil {
		return nil, err
	}
	w.ID, _ = primitive.ObjectIDFromHex(id)
	return w, nil
}

func (s *WatchlistService) List(ctx context.Context, email string) ([]*model.WatchlistItem, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *WatchlistService) Remove(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
