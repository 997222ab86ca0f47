package service

import (
	"context"
	"time"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de órdenes
type OrderRepository interface {
	Insert(ctx context.Context, o *model.Order) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	FindByBuyer(ctx context.Context, buyerEmail string) ([]*model.Order, error)
	FindAll(ctx context.Context, status string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Accept(ctx context.Context, id primitive.ObjectID, acceptedBy string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type OrderService struct {
	repo     OrderRepository
	products ProductRepository
}

func NewOrderService(repo OrderRepository, products ProductRepository) *OrderService {
	return &OrderService{repo: repo, products: products}
}

// Create snapshotea nombre/precio/vendor del producto al momento de la
// compra. Solo se ordenan productos aprobados.
func (s *OrderService) Create(ctx context.Context, productID primitive.ObjectID, req dto.CreateOrderRequest) (*model.Order, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.Status != model.ApprovalApproved {
		return nil, ErrProductNotApproved
	}

	o := &model.Order{
		ProductID:   productID.Hex(),
		ProductName: p.Name,
		BuyerEmail:  req.BuyerEmail,
		VendorEmail: p.VendorEmail,
		Quantity:    req.Quantity,
		Price:       p.Price * float64(req.Quantity),
		Status:      model.OrderPending,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, o)
	if err != nil {
		return nil, err
	}
	o.ID, _ = primitive.ObjectIDFromHex(id)
	return o, nil
}

func (s *OrderService) MyOrders(ctx context.Context, buyerEmail string) ([]*model.Order, error) {
	return s.repo.FindByBuyer(ctx, buyerEmail)
}

func (s *OrderService) AdminList(ctx context.Context, status string) ([]*model.Order, error) {
	return s.repo.FindAll(ctx, status)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus string) error {
	if !model.IsValidOrderStatus(newStatus) {
		return ErrInvalidStatus
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o.Status == newStatus {
		return nil
	}
	if !model.CanTransitionOrder(o.Status, newStatus) {
		return ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, newStatus)
}

// Accept: el update condicional del repo hace que dos accepts
// concurrentes no pisen el accepted_by.
func (s *OrderService) Accept(ctx context.Context, id primitive.ObjectID, acceptedBy string) error {
	return s.repo.Accept(ctx, id, acceptedBy)
}

// Delete: solo el comprador (o un admin) puede borrar, y solo órdenes
// que siguen pendientes.
func (s *OrderService) Delete(ctx context.Context, id primitive.ObjectID, actorEmail string, isAdmin bool) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && o.BuyerEmail != actorEmail {
		return ErrForbidden
	}
	if !isAdmin && o.Status != model.OrderPending {
		return ErrInvalidTransition
	}
	return s.repo.Delete(ctx, id)
}
