package service

import (
	"context"
	"errors"
	"testing"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/model"
	"parcel-delivery-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newOrderFixture() (*OrderService, *fakeOrderRepo, *fakeProductRepo) {
	orders := newFakeOrderRepo()
	products := newFakeProductRepo()
	svc := NewOrderService(orders, products)
	return svc, orders, products
}

func TestOrderService_CreateSnapshotsProduct(t *testing.T) {
	svc, _, products := newOrderFixture()

	p := &model.Product{Name: "Miel artesanal", Price: 12.5, VendorEmail: "v@x.com", Status: model.ApprovalApproved}
	_, _ = products.Insert(context.Background(), p)

	o, err := svc.Create(context.Background(), p.ID, dto.CreateOrderRequest{BuyerEmail: "b@x.com", Quantity: 3})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if o.ProductName != "Miel artesanal" || o.VendorEmail != "v@x.com" {
		t.Error("Expected product name and vendor snapshotted onto the order")
	}
	if o.Price != 37.5 {
		t.Errorf("Expected price 37.5 (12.5 x 3), got %v", o.Price)
	}
	if o.Status != model.OrderPending {
		t.Errorf("Expected new order pending, got %q", o.Status)
	}
}

func TestOrderService_CreateRejectsUnapprovedProduct(t *testing.T) {
	svc, orders, products := newOrderFixture()

	p := &model.Product{Name: "Pendiente", Price: 10, VendorEmail: "v@x.com", Status: model.ApprovalPending}
	_, _ = products.Insert(context.Background(), p)

	_, err := svc.Create(context.Background(), p.ID, dto.CreateOrderRequest{BuyerEmail: "b@x.com", Quantity: 1})
	if !errors.Is(err, ErrProductNotApproved) {
		t.Errorf("Expected ErrProductNotApproved, got: %v", err)
	}
	if len(orders.orders) != 0 {
		t.Error("Expected no order persisted for an unapproved product")
	}
}

func TestOrderService_UpdateStatusValidatesTransitions(t *testing.T) {
	svc, orders, _ := newOrderFixture()

	o := &model.Order{BuyerEmail: "b@x.com", Status: model.OrderPending}
	_, _ = orders.Insert(context.Background(), o)

	if err := svc.UpdateStatus(context.Background(), o.ID, "Enviado"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus for unknown status, got: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), o.ID, model.OrderDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition for pending->delivered, got: %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), o.ID, model.OrderAccepted); err != nil {
		t.Fatalf("Expected pending->accepted to succeed, got: %v", err)
	}
	if orders.orders[o.ID].Status != model.OrderAccepted {
		t.Errorf("Expected stored status accepted, got %q", orders.orders[o.ID].Status)
	}
}

func TestOrderService_AcceptOnlyOnce(t *testing.T) {
	svc, orders, _ := newOrderFixture()

	o := &model.Order{BuyerEmail: "b@x.com", Status: model.OrderPending}
	_, _ = orders.Insert(context.Background(), o)

	if err := svc.Accept(context.Background(), o.ID, "rider@x.com"); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if err := svc.Accept(context.Background(), o.ID, "other@x.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second accept, got: %v", err)
	}
	if orders.orders[o.ID].AcceptedBy != "rider@x.com" {
		t.Errorf("Expected first accepter kept, got %q", orders.orders[o.ID].AcceptedBy)
	}
}

func TestOrderService_DeleteRules(t *testing.T) {
	svc, orders, _ := newOrderFixture()

	o := &model.Order{BuyerEmail: "b@x.com", Status: model.OrderAccepted}
	_, _ = orders.Insert(context.Background(), o)

	if err := svc.Delete(context.Background(), o.ID, "otro@x.com", false); !errors.Is(err, ErrForbidden) {
		t.Errorf("Expected ErrForbidden for a stranger, got: %v", err)
	}
	if err := svc.Delete(context.Background(), o.ID, "b@x.com", false); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition for a non-pending order, got: %v", err)
	}
	// el admin sí puede borrar una orden ya aceptada
	if err := svc.Delete(context.Background(), o.ID, "admin@x.com", true); err != nil {
		t.Errorf("Expected admin delete to succeed, got: %v", err)
	}
	if len(orders.orders) != 0 {
		t.Error("Expected order removed")
	}
}

func TestOrderService_DeleteMissing(t *testing.T) {
	svc, _, _ := newOrderFixture()
	err := svc.Delete(context.Background(), primitive.NewObjectID(), "b@x.com", false)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}
