// dto.go
package dto

// RegisterUserRequest usado por POST /users. Si el email ya existe se
// devuelve el usuario guardado tal cual.
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type CreateParcelRequest struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	CreatedBy string `json:"created_by" binding:"required,email"`

	SenderName     string `json:"senderName"`
	SenderContact  string `json:"senderContact"`
	SenderRegion   string `json:"senderRegion"`
	SenderDistrict string `json:"senderDistrict"`
	SenderAddress  string `json:"senderAddress"`

	ReceiverName     string `json:"receiverName"`
	ReceiverContact  string `json:"receiverContact"`
	ReceiverRegion   string `json:"receiverRegion"`
	ReceiverDistrict string `json:"receiverDistrict"`
	ReceiverAddress  string `json:"receiverAddress"`

	Cost float64 `json:"cost" binding:"required,gt=0"`
}

type UpdateParcelStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Location string `json:"location"`
}

type AssignRiderRequest struct {
	RiderID string `json:"riderId" binding:"required"`
}

// PatchParcelRequest es el patch genérico: solo campos editables.
type PatchParcelRequest struct {
	Title           string  `json:"title"`
	ReceiverName    string  `json:"receiverName"`
	ReceiverContact string  `json:"receiverContact"`
	ReceiverAddress string  `json:"receiverAddress"`
	Cost            float64 `json:"cost"`
}

type RiderApplicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Contact   string `json:"contact" binding:"required"`
	Region    string `json:"region" binding:"required"`
	District  string `json:"district" binding:"required"`
	NID       string `json:"nid"`
	BikeBrand string `json:"bikeBrand"`
}

type UpdateRiderRequest struct {
	Status     string `json:"status"`
	WorkStatus string `json:"work_status"`
	District   string `json:"district"`
}

type AppendTrackingRequest struct {
	TrackingID string `json:"trackingId" binding:"required"`
	ParcelID   string `json:"parcelId" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Location   string `json:"location"`
	Message    string `json:"message"`
	UpdatedBy  string `json:"updatedBy"`
}

type CreatePaymentIntentRequest struct {
	AmountInCents int64  `json:"amountInCents" binding:"required,gt=0"`
	Currency      string `json:"currency"`
}

type RecordPaymentRequest struct {
	ParcelID      string  `json:"parcelId" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
	PaymentMethod string  `json:"paymentMethod"`
}

type CreateNotificationRequest struct {
	Message  string `json:"message" binding:"required"`
	FromRole string `json:"fromRole"`
	ToRole   string `json:"toRole" binding:"required"`
	ToEmail  string `json:"toEmail"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	VendorEmail string  `json:"vendorEmail" binding:"required,email"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type ModerateRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddReviewRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type CreateOrderRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	BuyerEmail string `json:"buyerEmail" binding:"required,email"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateAdvertisementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProductID   string `json:"productId" binding:"required"`
	VendorEmail string `json:"vendorEmail" binding:"required,email"`
}

type AddWatchlistRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ProductID   string `json:"productId" binding:"required"`
	ProductName string `json:"productName"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
