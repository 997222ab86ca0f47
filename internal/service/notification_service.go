package service

import (
	"context"
	"log"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de notificaciones
type NotificationRepository interface {
	Insert(ctx context.Context, n *model.Notification) (string, error)
	Find(ctx context.Context, toRole, toEmail string) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

// Notifier publica al fan-out en tiempo real. Best-effort: sin garantía
// de entrega ni de orden; un listener desconectado se pierde el mensaje.
type Notifier interface {
	Publish(ctx context.Context, n *model.Notification) error
}

type NotificationService struct {
	repo     NotificationRepository
	notifier Notifier
}

func NewNotificationService(repo NotificationRepository, notifier Notifier) *NotificationService {
	return &NotificationService{repo: repo, notifier: notifier}
}

// Create guarda el mailbox y después publica al broker. El publish
// puede fallar sin afectar la respuesta.
func (s *NotificationService) Create(ctx context.Context, req dto.CreateNotificationRequest) (*model.Notification, error) {
	n := &model.Notification{
		Message:   req.Message,
		FromRole:  req.FromRole,
		ToRole:    req.ToRole,
		ToEmail:   req.ToEmail,
		Status:    model.NotificationUnread,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, n)
	if err != nil {
		return nil, err
	}
	n.ID, _ = primitive.ObjectIDFromHex(id)

	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, n); err != nil {
			log.Println("notification publish failed:", err)
		}
	}
	return n, nil
}

func (s *NotificationService) List(ctx context.Context, toRole, toEmail string) ([]*model.Notification, error) {
	return s.repo.Find(ctx, toRole, toEmail)
}

func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.MarkRead(ctx, id)
}
