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

func newPaymentFixture() (*PaymentService, *fakePaymentRepo, *fakeParcelRepo, *fakeNotifier) {
	payments := &fakePaymentRepo{}
	parcels := newFakeParcelRepo()
	notifier := &fakeNotifier{}
	svc := NewPaymentService(payments, parcels, nil, &fakeTx{}, notifier)
	return svc, payments, parcels, notifier
}

func TestPaymentService_RecordMarksPaidAndInsertsOneRecord(t *testing.T) {
	svc, payments, parcels, notifier := newPaymentFixture()

	p := &model.Parcel{CreatedBy: "a@x.com", Cost: 100, PaymentStatus: model.PaymentUnpaid}
	_, _ = parcels.Insert(context.Background(), p)

	pay, err := svc.Record(context.Background(), p.ID, dto.RecordPaymentRequest{
		ParcelID: p.ID.Hex(), Email: "a@x.com", Amount: 100, PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if parcels.parcels[p.ID].PaymentStatus != model.PaymentPaid {
		t.Error("Expected parcel marked paid")
	}
	if len(payments.payments) != 1 {
		t.Errorf("Expected exactly one payment record, got %d", len(payments.payments))
	}
	if pay.TransactionID == "" {
		t.Error("Expected a generated transaction id")
	}
	if len(notifier.published) != 1 {
		t.Errorf("Expected one admin notification, got %d", len(notifier.published))
	}
}

// El registro de pago NO es idempotente: dos llamadas, dos registros.
// Comportamiento vigente, documentado.
func TestPaymentService_RecordIsNotIdempotent(t *testing.T) {
	svc, payments, parcels, _ := newPaymentFixture()

	p := &model.Parcel{CreatedBy: "a@x.com", Cost: 100}
	_, _ = parcels.Insert(context.Background(), p)

	req := dto.RecordPaymentRequest{ParcelID: p.ID.Hex(), Email: "a@x.com", Amount: 100}
	if _, err := svc.Record(context.Background(), p.ID, req); err != nil {
		t.Fatalf("first record: %v", err)
	}
	if _, err := svc.Record(context.Background(), p.ID, req); err != nil {
		t.Fatalf("second record: %v", err)
	}

	if len(payments.payments) != 2 {
		t.Errorf("Expected two payment records after two calls, got %d", len(payments.payments))
	}
}

func TestPaymentService_RecordUnknownParcel(t *testing.T) {
	svc, payments, _, _ := newPaymentFixture()

	_, err := svc.Record(context.Background(), primitive.NewObjectID(), dto.RecordPaymentRequest{
		ParcelID: primitive.NewObjectID().Hex(), Email: "a@x.com", Amount: 100,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
	if len(payments.payments) != 0 {
		t.Error("Expected no payment record when the parcel does not exist")
	}
}

func TestPaymentService_RecordSucceedsDespiteNotifierFailure(t *testing.T) {
	payments := &fakePaymentRepo{}
	parcels := newFakeParcelRepo()
	svc := NewPaymentService(payments, parcels, nil, &fakeTx{}, &fakeNotifier{err: context.DeadlineExceeded})

	p := &model.Parcel{CreatedBy: "a@x.com", Cost: 100}
	_, _ = parcels.Insert(context.Background(), p)

	_, err := svc.Record(context.Background(), p.ID, dto.RecordPaymentRequest{
		ParcelID: p.ID.Hex(), Email: "a@x.com", Amount: 100,
	})
	if err != nil {
		t.Errorf("Expected success despite broker failure, got: %v", err)
	}
	if len(payments.payments) != 1 {
		t.Errorf("Expected one payment record, got %d", len(payments.payments))
	}
}
