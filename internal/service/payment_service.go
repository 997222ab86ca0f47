package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de pagos
type PaymentRepository interface {
	Insert(ctx context.Context, p *model.Payment) (string, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Payment, error)
	FindAll(ctx context.Context) ([]*model.Payment, error)
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, amountInCents int64, currency string) (*PaymentIntent, error)
}

type PaymentService struct {
	repo     PaymentRepository
	parcels  ParcelRepository
	gateway  IntentCreator
	tx       TxRunner
	notifier Notifier
}

func NewPaymentService(repo PaymentRepository, parcels ParcelRepository, gateway IntentCreator, tx TxRunner, notifier Notifier) *PaymentService {
	return &PaymentService{repo: repo, parcels: parcels, gateway: gateway, tx: tx, notifier: notifier}
}

func (s *PaymentService) CreateIntent(ctx context.Context, amountInCents int64, currency string) (*PaymentIntent, error) {
	return s.gateway.CreateIntent(ctx, amountInCents, currency)
}

// Record marca el parcel como pagado e inserta el registro de pago en
// una sola transacción. OJO: no hay clave de idempotencia; dos llamadas
// seguidas registran dos pagos. Es el comportamiento vigente.
func (s *PaymentService) Record(ctx context.Context, parcelID primitive.ObjectID, req dto.RecordPaymentRequest) (*model.Payment, error) {
	txID := req.TransactionID
	if txID == "" {
		txID = uuid.New().String()
	}

	payment := &model.Payment{
		ParcelID:      parcelID.Hex(),
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: txID,
		PaymentMethod: req.PaymentMethod,
		PaidAt:        time.Now().UTC(),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.parcels.MarkPaid(ctx, parcelID); err != nil {
			return err
		}
		id, err := s.repo.Insert(ctx, payment)
		if err != nil {
			return err
		}
		payment.ID, _ = primitive.ObjectIDFromHex(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fan-out posterior al commit, sin garantía de entrega
	if s.notifier != nil {
		notifErr := s.notifier.Publish(ctx, &model.Notification{
			Message:   fmt.Sprintf("Payment of %.2f received for parcel %s", req.Amount, parcelID.Hex()),
			FromRole:  model.RoleUser,
			ToRole:    model.RoleAdmin,
			Status:    model.NotificationUnread,
			CreatedAt: time.Now().UTC(),
		})
		if notifErr != nil {
			log.Println("payment notification publish failed:", notifErr)
		}
	}

	return payment, nil
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *PaymentService) ListAll(ctx context.Context) ([]*model.Payment, error) {
	return s.repo.FindAll(ctx)
}
