package service

import (
	"context"
	"errors"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"
	"parcel-delivery-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de riders
type RiderRepository interface {
	Insert(ctx context.Context, r *model.Rider) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Rider, error)
	FindByEmail(ctx context.Context, email string) (*model.Rider, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Rider, error)
	FindAvailable(ctx context.Context, district string) ([]*model.Rider, error)
	SearchActive(ctx context.Context, q string) ([]*model.Rider, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	SetWorkStatus(ctx context.Context, id primitive.ObjectID, workStatus string) error
	IncDeliveries(ctx context.Context, id primitive.ObjectID) error
}

// Porcentaje que cobra el rider sobre el costo del parcel.
const (
	sameDistrictShare  = 0.2
	crossDistrictShare = 0.3
)

type RiderService struct {
	repo    RiderRepository
	parcels ParcelRepository
	users   UserRepository
	tx      TxRunner
	cache   RoleInvalidator
}

func NewRiderService(repo RiderRepository, parcels ParcelRepository, users UserRepository, tx TxRunner, cache RoleInvalidator) *RiderService {
	return &RiderService{repo: repo, parcels: parcels, users: users, tx: tx, cache: cache}
}

func (s *RiderService) Apply(ctx context.Context, req dto.RiderApplicationRequest) (*model.Rider, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	r := &model.Rider{
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		Region:     req.Region,
		District:   req.District,
		NID:        req.NID,
		BikeBrand:  req.BikeBrand,
		Status:     model.RiderPending,
		WorkStatus: model.WorkAvailable,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, r)
	if err != nil {
		return nil, err
	}
	r.ID, _ = primitive.ObjectIDFromHex(id)
	return r, nil
}

func (s *RiderService) Pending(ctx context.Context) ([]*model.Rider, error) {
	return s.repo.FindByStatus(ctx, model.RiderPending)
}

func (s *RiderService) Available(ctx context.Context, district string) ([]*model.Rider, error) {
	return s.repo.FindAvailable(ctx, district)
}

func (s *RiderService) Active(ctx context.Context, q string) ([]*model.Rider, error) {
	return s.repo.SearchActive(ctx, q)
}

// AdminUpdate cambia estado/distrito del rider. Aprobar un rider
// (status → available) también promueve su rol de usuario a "rider";
// los dos writes van en la misma transacción.
func (s *RiderService) AdminUpdate(ctx context.Context, id primitive.ObjectID, req dto.UpdateRiderRequest) error {
	fields := bson.M{}
	if req.Status != "" {
		if !model.IsValidRiderStatus(req.Status) {
			return ErrInvalidStatus
		}
		fields["status"] = req.Status
	}
	if req.WorkStatus != "" {
		fields["work_status"] = req.WorkStatus
	}
	if req.District != "" {
		fields["district"] = req.District
	}
	if len(fields) == 0 {
		return nil
	}

	if req.Status != model.RiderAvailable {
		return s.repo.Update(ctx, id, fields)
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return err
		}
		err := s.users.UpdateRoleByEmail(ctx, r.Email, model.RoleRider)
		if errors.Is(err, repository.ErrNotFound) {
			// Rider sin cuenta de usuario todavía; se promueve al registrarse
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, r.Email)
	}
	return nil
}

// CashOut: cobro único del rider por un parcel entregado. El update
// condicional del repositorio garantiza at-most-once aunque lleguen
// requests duplicados en paralelo.
func (s *RiderService) CashOut(ctx context.Context, parcelID primitive.ObjectID, riderEmail string) (float64, error) {
	p, err := s.parcels.FindByID(ctx, parcelID)
	if err != nil {
		return 0, err
	}
	if p.AssignedRiderEmail != riderEmail {
		return 0, ErrForbidden
	}
	if p.DeliveryStatus != model.ParcelDelivered {
		return 0, ErrParcelNotDelivered
	}
	if p.CashedOut {
		return 0, ErrAlreadyCashedOut
	}

	amount := cashOutAmount(p)
	err = s.parcels.CashOut(ctx, parcelID, amount, time.Now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		// Perdimos la carrera contra un request duplicado
		return 0, ErrAlreadyCashedOut
	}
	if err != nil {
		return 0, err
	}
	return amount, nil
}

func cashOutAmount(p *model.Parcel) float64 {
	if p.SenderDistrict == p.ReceiverDistrict {
		return p.Cost * sameDistrictShare
	}
	return p.Cost * crossDistrictShare
}

// MyParcels: entregas en curso del rider.
func (s *RiderService) MyParcels(ctx context.Context, riderEmail string) ([]*model.Parcel, error) {
	return s.parcels.FindByAssignedRider(ctx, riderEmail, []string{model.ParcelRiderAssigned, model.ParcelInTransit})
}

func (s *RiderService) CompletedParcels(ctx context.Context, riderEmail string) ([]*model.Parcel, error) {
	return s.parcels.FindByAssignedRider(ctx, riderEmail, []string{model.ParcelDelivered})
}
