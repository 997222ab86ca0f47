package service

import (
	"context"
	"sort"
	"time"

	"parcel-delivery-service/internal/model"
	"parcel-delivery-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fakes in-memory de los repositorios; mismo contrato que Mongo,
// incluidos los ErrNotFound y el guard condicional de CashOut.

type fakeTx struct{ calls int }

func (f *fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	published []*model.Notification
	err       error
}

func (f *fakeNotifier) Publish(_ context.Context, n *model.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, n)
	return nil
}

type fakeRoleCache struct {
	invalidated []string
}

func (f *fakeRoleCache) Invalidate(_ context.Context, email string) {
	f.invalidated = append(f.invalidated, email)
}

type fakeUserRepo struct {
	users map[string]*model.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, u *model.User) (string, error) {
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = u
	return u.ID.Hex(), nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id primitive.ObjectID, role string) error {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateRoleByEmail(_ context.Context, email, role string) error {
	u, ok := f.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) TouchLastLogIn(_ context.Context, email string, at time.Time) error {
	if u, ok := f.users[email]; ok {
		u.LastLogIn = at
	}
	return nil
}

func (f *fakeUserRepo) Search(_ context.Context, _ string) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeParcelRepo struct {
	parcels map[primitive.ObjectID]*model.Parcel
}

func newFakeParcelRepo() *fakeParcelRepo {
	return &fakeParcelRepo{parcels: make(map[primitive.ObjectID]*model.Parcel)}
}

func (f *fakeParcelRepo) Insert(_ context.Context, p *model.Parcel) (string, error) {
	p.ID = primitive.NewObjectID()
	f.parcels[p.ID] = p
	return p.ID.Hex(), nil
}

func (f *fakeParcelRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Parcel, error) {
	p, ok := f.parcels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeParcelRepo) Find(_ context.Context, flt repository.ParcelFilter) ([]*model.Parcel, error) {
	var out []*model.Parcel
	for _, p := range f.parcels {
		if flt.CreatedBy != "" && p.CreatedBy != flt.CreatedBy {
			continue
		}
		if flt.DeliveryStatus != "" && p.DeliveryStatus != flt.DeliveryStatus {
			continue
		}
		if flt.PaymentStatus != "" && p.PaymentStatus != flt.PaymentStatus {
			continue
		}
		if flt.District != "" && p.ReceiverDistrict != flt.District {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeParcelRepo) FindByAssignedRider(_ context.Context, riderEmail string, statuses []string) ([]*model.Parcel, error) {
	var out []*model.Parcel
	for _, p := range f.parcels {
		if p.AssignedRiderEmail != riderEmail {
			continue
		}
		if len(statuses) > 0 {
			found := false
			for _, s := range statuses {
				if p.DeliveryStatus == s {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeParcelRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.parcels[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.parcels, id)
	return nil
}

func (f *fakeParcelRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, deliveredAt *time.Time) error {
	p, ok := f.parcels[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.DeliveryStatus = status
	if deliveredAt != nil {
		p.DeliveredAt = deliveredAt
	}
	return nil
}

func (f *fakeParcelRepo) Patch(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	p, ok := f.parcels[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := fields["cost"]; ok {
		p.Cost = v.(float64)
	}
	return nil
}

func (f *fakeParcelRepo) AssignRider(_ context.Context, id primitive.ObjectID, riderID, riderEmail, riderName string) error {
	p, ok := f.parcels[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.DeliveryStatus = model.ParcelRiderAssigned
	p.AssignedRiderID = riderID
	p.AssignedRiderEmail = riderEmail
	p.AssignedRiderName = riderName
	return nil
}

func (f *fakeParcelRepo) MarkPaid(_ context.Context, id primitive.ObjectID) error {
	p, ok := f.parcels[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.PaymentStatus = model.PaymentPaid
	return nil
}

func (f *fakeParcelRepo) CashOut(_ context.Context, id primitive.ObjectID, amount float64, at time.Time) error {
	p, ok := f.parcels[id]
	if !ok || p.CashedOut {
		// mismo contrato que el update condicional de Mongo
		return repository.ErrNotFound
	}
	p.CashedOut = true
	p.CashedOutAt = &at
	p.CashOutAmount = amount
	return nil
}

func (f *fakeParcelRepo) CountByDeliveryStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, p := range f.parcels {
		out[p.DeliveryStatus]++
	}
	return out, nil
}

type fakeRiderRepo struct {
	riders map[primitive.ObjectID]*model.Rider
}

func newFakeRiderRepo() *fakeRiderRepo {
	return &fakeRiderRepo{riders: make(map[primitive.ObjectID]*model.Rider)}
}

func (f *fakeRiderRepo) Insert(_ context.Context, r *model.Rider) (string, error) {
	r.ID = primitive.NewObjectID()
	f.riders[r.ID] = r
	return r.ID.Hex(), nil
}

func (f *fakeRiderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Rider, error) {
	r, ok := f.riders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRiderRepo) FindByEmail(_ context.Context, email string) (*model.Rider, error) {
	for _, r := range f.riders {
		if r.Email == email {
			return r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRiderRepo) FindByStatus(_ context.Context, status string) ([]*model.Rider, error) {
	var out []*model.Rider
	for _, r := range f.riders {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRiderRepo) FindAvailable(_ context.Context, district string) ([]*model.Rider, error) {
	var out []*model.Rider
	for _, r := range f.riders {
		if r.Status != model.RiderAvailable || r.WorkStatus != model.WorkAvailable {
			continue
		}
		if district != "" && r.District != district {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRiderRepo) SearchActive(_ context.Context, _ string) ([]*model.Rider, error) {
	var out []*model.Rider
	for _, r := range f.riders {
		if r.Status == model.RiderAvailable || r.Status == model.RiderBusy {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRiderRepo) Update(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	r, ok := f.riders[id]
	if !ok {
		return repository.ErrNotFound
	}
	if v, ok := fields["status"]; ok {
		r.Status = v.(string)
	}
	if v, ok := fields["work_status"]; ok {
		r.WorkStatus = v.(string)
	}
	if v, ok := fields["district"]; ok {
		r.District = v.(string)
	}
	return nil
}

func (f *fakeRiderRepo) SetWorkStatus(ctx context.Context, id primitive.ObjectID, workStatus string) error {
	return f.Update(ctx, id, bson.M{"work_status": workStatus})
}

func (f *fakeRiderRepo) IncDeliveries(_ context.Context, id primitive.ObjectID) error {
	r, ok := f.riders[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.Deliveries++
	return nil
}

type fakeTrackingRepo struct {
	events []*model.TrackingEvent
}

func (f *fakeTrackingRepo) Insert(_ context.Context, e *model.TrackingEvent) (string, error) {
	e.ID = primitive.NewObjectID()
	f.events = append(f.events, e)
	return e.ID.Hex(), nil
}

func (f *fakeTrackingRepo) FindByTrackingID(_ context.Context, trackingID string) ([]*model.TrackingEvent, error) {
	var out []*model.TrackingEvent
	for _, e := range f.events {
		if e.TrackingID == trackingID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

type fakePaymentRepo struct {
	payments []*model.Payment
}

func (f *fakePaymentRepo) Insert(_ context.Context, p *model.Payment) (string, error) {
	p.ID = primitive.NewObjectID()
	f.payments = append(f.payments, p)
	return p.ID.Hex(), nil
}

func (f *fakePaymentRepo) FindByEmail(_ context.Context, email string) ([]*model.Payment, error) {
	var out []*model.Payment
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context) ([]*model.Payment, error) {
	return f.payments, nil
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*model.Product)}
}

func (f *fakeProductRepo) Insert(_ context.Context, p *model.Product) (string, error) {
	p.ID = primitive.NewObjectID()
	f.products[p.ID] = p
	return p.ID.Hex(), nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindApproved(_ context.Context, _, _ string) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		if p.Status == model.ApprovalApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindByVendor(_ context.Context, vendorEmail string) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		if p.VendorEmail == vendorEmail {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, status string) ([]*model.Product, error) {
	var out []*model.Product
	for _, p := range f.products {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, vendorEmail string, fields bson.M) error {
	p, ok := f.products[id]
	if !ok || p.VendorEmail != vendorEmail {
		return repository.ErrNotFound
	}
	if v, ok := fields["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(float64)
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID, vendorEmail string) error {
	p, ok := f.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	if vendorEmail != "" && p.VendorEmail != vendorEmail {
		return repository.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) SetStatus(_ context.Context, id primitive.ObjectID, status string) error {
	p, ok := f.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProductRepo) PushReview(_ context.Context, id primitive.ObjectID, r model.Review) error {
	p, ok := f.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Reviews = append(p.Reviews, r)
	return nil
}

type fakeOrderRepo struct {
	orders map[primitive.ObjectID]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*model.Order)}
}

func (f *fakeOrderRepo) Insert(_ context.Context, o *model.Order) (string, error) {
	o.ID = primitive.NewObjectID()
	f.orders[o.ID] = o
	return o.ID.Hex(), nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) FindByBuyer(_ context.Context, buyerEmail string) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		if o.BuyerEmail == buyerEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context, status string) ([]*model.Order, error) {
	var out []*model.Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) Accept(_ context.Context, id primitive.ObjectID, acceptedBy string) error {
	o, ok := f.orders[id]
	if !ok || o.Status != model.OrderPending {
		return repository.ErrNotFound
	}
	o.Status = model.OrderAccepted
	o.AcceptedBy = acceptedBy
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeWatchlistRepo struct {
	items map[primitive.ObjectID]*model.WatchlistItem
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{items: make(map[primitive.ObjectID]*model.WatchlistItem)}
}

func (f *fakeWatchlistRepo) Insert(_ context.Context, w *model.WatchlistItem) (string, error) {
	w.ID = primitive.NewObjectID()
	f.items[w.ID] = w
	return w.ID.Hex(), nil
}

func (f *fakeWatchlistRepo) FindByEmailAndProduct(_ context.Context, email, productID string) (*model.WatchlistItem, error) {
	for _, w := range f.items {
		if w.Email == email && w.ProductID == productID {
			return w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeWatchlistRepo) FindByEmail(_ context.Context, email string) ([]*model.WatchlistItem, error) {
	var out []*model.WatchlistItem
	for _, w := range f.items {
		if w.Email == email {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWatchlistRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
