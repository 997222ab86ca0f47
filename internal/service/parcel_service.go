package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"
	"parcel-delivery-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de parcels
type ParcelRepository interface {
	Insert(ctx context.Context, p *model.Parcel) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Parcel, error)
	Find(ctx context.Context, f repository.ParcelFilter) ([]*model.Parcel, error)
	FindByAssignedRider(ctx context.Context, riderEmail string, statuses []string) ([]*model.Parcel, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, deliveredAt *time.Time) error
	Patch(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	AssignRider(ctx context.Context, id primitive.ObjectID, riderID, riderEmail, riderName string) error
	MarkPaid(ctx context.Context, id primitive.ObjectID) error
	CashOut(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) error
	CountByDeliveryStatus(ctx context.Context) (map[string]int64, error)
}

// Corredor de transacciones para los workflows multi-documento.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ParcelService struct {
	repo     ParcelRepository
	riders   RiderRepository
	tracking TrackingRepository
	tx       TxRunner
	notifier Notifier
}

func NewParcelService(repo ParcelRepository, riders RiderRepository, tracking TrackingRepository, tx TxRunner, notifier Notifier) *ParcelService {
	return &ParcelService{repo: repo, riders: riders, tracking: tracking, tx: tx, notifier: notifier}
}

// newTrackingID genera el número de seguimiento público del parcel.
func newTrackingID(now time.Time) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("PCL-%s-%s", now.Format("20060102"), frag)
}

func (s *ParcelService) Create(ctx context.Context, req dto.CreateParcelRequest) (*model.Parcel, error) {
	now := time.Now().UTC()

	p := &model.Parcel{
		TrackingID:       newTrackingID(now),
		Type:             req.Type,
		Title:            req.Title,
		CreatedBy:        req.CreatedBy,
		SenderName:       req.SenderName,
		SenderContact:    req.SenderContact,
		SenderRegion:     req.SenderRegion,
		SenderDistrict:   req.SenderDistrict,
		SenderAddress:    req.SenderAddress,
		ReceiverName:     req.ReceiverName,
		ReceiverContact:  req.ReceiverContact,
		ReceiverRegion:   req.ReceiverRegion,
		ReceiverDistrict: req.ReceiverDistrict,
		ReceiverAddress:  req.ReceiverAddress,
		Cost:             req.Cost,
		DeliveryStatus:   model.ParcelPending,
		PaymentStatus:    model.PaymentUnpaid,
		CreatedAt:        now,
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID, _ = primitive.ObjectIDFromHex(id)

	// Primer evento del historial; si falla no tumba el alta
	s.appendTracking(ctx, p, model.ParcelPending, p.SenderDistrict, "Parcel created", req.CreatedBy)

	return p, nil
}

func (s *ParcelService) List(ctx context.Context, f repository.ParcelFilter) ([]*model.Parcel, error) {
	return s.repo.Find(ctx, f)
}

func (s *ParcelService) Get(ctx context.Context, id primitive.ObjectID) (*model.Parcel, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete: solo el creador o un admin pueden borrar.
func (s *ParcelService) Delete(ctx context.Context, id primitive.ObjectID, actorEmail string, isAdmin bool) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && p.CreatedBy != actorEmail {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// UpdateStatus valida la transición contra la tabla canónica. Marcar
// delivered libera al rider en la misma transacción.
func (s *ParcelService) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus, location, actorEmail string) error {
	if !model.IsValidParcelStatus(newStatus) {
		return ErrInvalidStatus
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if p.DeliveryStatus == newStatus {
		return nil
	}
	if model.IsFinalParcelStatus(p.DeliveryStatus) {
		return ErrFinalState
	}
	if !model.CanTransitionParcel(p.DeliveryStatus, newStatus) {
		return ErrInvalidTransition
	}

	if newStatus == model.ParcelDelivered && p.AssignedRiderID != "" {
		riderID, err := primitive.ObjectIDFromHex(p.AssignedRiderID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
			if err := s.repo.UpdateStatus(ctx, id, newStatus, &now); err != nil {
				return err
			}
			if err := s.riders.Update(ctx, riderID, bson.M{
				"status":      model.RiderAvailable,
				"work_status": model.WorkAvailable,
			}); err != nil {
				return err
			}
			return s.riders.IncDeliveries(ctx, riderID)
		})
		if err != nil {
			return err
		}
	} else {
		var deliveredAt *time.Time
		if newStatus == model.ParcelDelivered {
			now := time.Now().UTC()
			deliveredAt = &now
		}
		if err := s.repo.UpdateStatus(ctx, id, newStatus, deliveredAt); err != nil {
			return err
		}
	}

	s.appendTracking(ctx, p, newStatus, location, "Status updated", actorEmail)
	s.notify(ctx, fmt.Sprintf("Parcel %s is now %s", p.TrackingID, newStatus), model.RoleUser, p.CreatedBy)
	return nil
}

// Patch genérico: aplica solo los campos presentes.
func (s *ParcelService) Patch(ctx context.Context, id primitive.ObjectID, req dto.PatchParcelRequest) error {
	fields := bson.M{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.ReceiverName != "" {
		fields["receiver_name"] = req.ReceiverName
	}
	if req.ReceiverContact != "" {
		fields["receiver_contact"] = req.ReceiverContact
	}
	if req.ReceiverAddress != "" {
		fields["receiver_address"] = req.ReceiverAddress
	}
	if req.Cost > 0 {
		fields["cost"] = req.Cost
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.Patch(ctx, id, fields)
}

// AssignRider ata el parcel y el estado del rider en una sola
// transacción; antes eran dos writes independientes que podían quedar
// a mitad de camino.
func (s *ParcelService) AssignRider(ctx context.Context, parcelID, riderID primitive.ObjectID) error {
	p, err := s.repo.FindByID(ctx, parcelID)
	if err != nil {
		return err
	}
	if p.DeliveryStatus != model.ParcelPending {
		return ErrParcelNotAssignable
	}
	if p.PaymentStatus != model.PaymentPaid {
		return ErrParcelNotPaid
	}

	r, err := s.riders.FindByID(ctx, riderID)
	if err != nil {
		return err
	}
	if r.Status != model.RiderAvailable || r.WorkStatus != model.WorkAvailable {
		return ErrRiderNotAvailable
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.AssignRider(ctx, parcelID, riderID.Hex(), r.Email, r.Name); err != nil {
			return err
		}
		return s.riders.Update(ctx, riderID, bson.M{
			"status":      model.RiderBusy,
			"work_status": model.WorkInDelivery,
		})
	})
	if err != nil {
		return err
	}

	s.appendTracking(ctx, p, model.ParcelRiderAssigned, p.SenderDistrict, "Rider "+r.Name+" assigned", r.Email)
	s.notify(ctx, fmt.Sprintf("Parcel %s assigned to you", p.TrackingID), model.RoleRider, r.Email)
	return nil
}

func (s *ParcelService) StatusCount(ctx context.Context) (map[string]int64, error) {
	return s.repo.CountByDeliveryStatus(ctx)
}

func (s *ParcelService) appendTracking(ctx context.Context, p *model.Parcel, status, location, message, by string) {
	_, err := s.tracking.Insert(ctx, &model.TrackingEvent{
		TrackingID: p.TrackingID,
		ParcelID:   p.ID.Hex(),
		Status:     status,
		Location:   location,
		Message:    message,
		UpdatedBy:  by,
		Timestamp:  time.Now().UTC(),
	})
	if err != nil {
		log.Println("tracking append failed:", err)
	}
}

// notify publica best-effort: un fallo del broker no corta el request.
func (s *ParcelService) notify(ctx context.Context, message, toRole, toEmail string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Publish(ctx, &model.Notification{
		Message:   message,
		FromRole:  model.RoleAdmin,
		ToRole:    toRole,
		ToEmail:   toEmail,
		Status:    model.NotificationUnread,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Println("notification publish failed:", err)
	}
}
