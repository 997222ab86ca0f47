// models.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles conocidos. Se comparan por string en la tabla de políticas.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleRider  = "rider"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	LastLogIn time.Time          `bson:"last_log_in" json:"lastLogIn"`
}

type Parcel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TrackingID string             `bson:"tracking_id" json:"trackingId"`
	Type       string             `bson:"type" json:"type"` // document | non-document
	Title      string             `bson:"title" json:"title"`
	CreatedBy  string             `bson:"created_by" json:"created_by"`

	SenderName     string `bson:"sender_name" json:"senderName"`
	SenderContact  string `bson:"sender_contact" json:"senderContact"`
	SenderRegion   string `bson:"sender_region" json:"senderRegion"`
	SenderDistrict string `bson:"sender_district" json:"senderDistrict"`
	SenderAddress  string `bson:"sender_address" json:"senderAddress"`

	ReceiverName     string `bson:"receiver_name" json:"receiverName"`
	ReceiverContact  string `bson:"receiver_contact" json:"receiverContact"`
	ReceiverRegion   string `bson:"receiver_region" json:"receiverRegion"`
	ReceiverDistrict string `bson:"receiver_district" json:"receiverDistrict"`
	ReceiverAddress  string `bson:"receiver_address" json:"receiverAddress"`

	Cost           float64 `bson:"cost" json:"cost"`
	DeliveryStatus string  `bson:"delivery_status" json:"delivery_status"`
	PaymentStatus  string  `bson:"payment_status" json:"payment_status"`

	AssignedRiderID    string `bson:"assigned_rider_id,omitempty" json:"assigned_rider_id,omitempty"`
	AssignedRiderEmail string `bson:"assigned_rider_email,omitempty" json:"assigned_rider_email,omitempty"`
	AssignedRiderName  string `bson:"assigned_rider_name,omitempty" json:"assigned_rider_name,omitempty"`

	// Cobro del rider: una sola vez por parcel (guard contra doble cashout).
	CashedOut     bool       `bson:"cashed_out,omitempty" json:"cashed_out,omitempty"`
	CashedOutAt   *time.Time `bson:"cashed_out_at,omitempty" json:"cashed_out_at,omitempty"`
	CashOutAmount float64    `bson:"cash_out_amount,omitempty" json:"cash_out_amount,omitempty"`

	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	DeliveredAt *time.Time `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
}

type Rider struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Contact    string             `bson:"contact" json:"contact"`
	Region     string             `bson:"region" json:"region"`
	District   string             `bson:"district" json:"district"`
	NID        string             `bson:"nid,omitempty" json:"nid,omitempty"`
	BikeBrand  string             `bson:"bike_brand,omitempty" json:"bikeBrand,omitempty"`
	Status     string             `bson:"status" json:"status"`
	WorkStatus string             `bson:"work_status" json:"work_status"`
	Deliveries int                `bson:"deliveries" json:"deliveries"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

type TrackingEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TrackingID string             `bson:"tracking_id" json:"trackingId"`
	ParcelID   string             `bson:"parcel_id" json:"parcelId"`
	Status     string             `bson:"status" json:"status"`
	Location   string             `bson:"location" json:"location"`
	Message    string             `bson:"message" json:"message"`
	UpdatedBy  string             `bson:"updated_by" json:"updatedBy"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ParcelID      string             `bson:"parcel_id" json:"parcelId"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transaction_id" json:"transactionId"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	PaidAt        time.Time          `bson:"paid_at" json:"paid_at"`
}

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Message   string             `bson:"message" json:"message"`
	FromRole  string             `bson:"from_role" json:"fromRole"`
	ToRole    string             `bson:"to_role" json:"toRole"`
	ToEmail   string             `bson:"to_email,omitempty" json:"toEmail,omitempty"`
	Status    string             `bson:"status" json:"status"` // unread | read
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type Review struct {
	UserEmail string    `bson:"user_email" json:"userEmail"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	VendorEmail string             `bson:"vendor_email" json:"vendorEmail"`
	Status      string             `bson:"status" json:"status"` // pending | approved | rejected
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"product_id" json:"productId"`
	ProductName string             `bson:"product_name" json:"productName"`
	BuyerEmail  string             `bson:"buyer_email" json:"buyerEmail"`
	VendorEmail string             `bson:"vendor_email" json:"vendorEmail"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	Status      string             `bson:"status" json:"status"`
	AcceptedBy  string             `bson:"accepted_by,omitempty" json:"acceptedBy,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type Advertisement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ProductID   string             `bson:"product_id" json:"productId"`
	VendorEmail string             `bson:"vendor_email" json:"vendorEmail"`
	Status      string             `bson:"status" json:"status"` // pending | approved | rejected
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

type WatchlistItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	ProductID   string             `bson:"product_id" json:"productId"`
	ProductName string             `bson:"product_name" json:"productName"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
