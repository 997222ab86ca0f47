package service

import (
	"context"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"
)

// Interfaz que debe implementar el repositorio de tracking
type TrackingRepository interface {
	Insert(ctx context.Context, e *model.TrackingEvent) (string, error)
	FindByTrackingID(ctx context.Context, trackingID string) ([]*model.TrackingEvent, error)
}

type TrackingService struct {
	repo TrackingRepository
}

func NewTrackingService(r TrackingRepository) *TrackingService {
	return &TrackingService{repo: r}
}

func (s *TrackingService) Append(ctx context.Context, req dto.AppendTrackingRequest) (*model.TrackingEvent, error) {
	e := &model.TrackingEvent{
		TrackingID: req.TrackingID,
		ParcelID:   req.ParcelID,
		Status:     req.Status,
		Location:   req.Location,
		Message:    req.Message,
		UpdatedBy:  req.UpdatedBy,
		Timestamp:  time.Now().UTC(),
	}
	if _, err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// History devuelve los eventos en orden ascendente (lo garantiza el repo).
func (s *TrackingService) History(ctx context.Context, trackingID string) ([]*model.TrackingEvent, error) {
	return s.repo.FindByTrackingID(ctx, trackingID)
}
