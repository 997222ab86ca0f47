// status.go
package model

// Enumeración canónica de estados. Los handlers duplicados del sistema
// anterior no coincidían entre sí; acá hay una sola tabla por entidad.

// Estados de entrega del parcel
const (
	ParcelPending       = "pending"
	ParcelRiderAssigned = "rider_assigned"
	ParcelInTransit     = "in_transit"
	ParcelDelivered     = "delivered"
	ParcelReturned      = "returned"
)

// Estados de pago
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Estados del rider
const (
	RiderPending     = "pending"
	RiderAvailable   = "available"
	RiderBusy        = "busy"
	RiderDeactivated = "deactivated"
)

// Work status del rider
const (
	WorkAvailable  = "available"
	WorkInDelivery = "in_delivery"
)

// Estados de la orden de marketplace
const (
	OrderPending   = "pending"
	OrderAccepted  = "accepted"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Estados de aprobación (productos y publicidades)
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

var validParcelStatuses = map[string]bool{
	ParcelPending:       true,
	ParcelRiderAssigned: true,
	ParcelInTransit:     true,
	ParcelDelivered:     true,
	ParcelReturned:      true,
}

func IsValidParcelStatus(s string) bool {
	return validParcelStatuses[s]
}

// Transiciones permitidas del estado de entrega
var parcelTransitions = map[string][]string{
	ParcelPending:       {ParcelRiderAssigned},
	ParcelRiderAssigned: {ParcelInTransit, ParcelReturned},
	ParcelInTransit:     {ParcelDelivered, ParcelReturned},
}

// Estados finales del parcel: no admiten más cambios
var parcelFinalStatuses = map[string]bool{
	ParcelDelivered: true,
	ParcelReturned:  true,
}

func IsFinalParcelStatus(s string) bool {
	return parcelFinalStatuses[s]
}

func CanTransitionParcel(from, to string) bool {
	for _, v := range parcelTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

var validRiderStatuses = map[string]bool{
	RiderPending:     true,
	RiderAvailable:   true,
	RiderBusy:        true,
	RiderDeactivated: true,
}

func IsValidRiderStatus(s string) bool {
	return validRiderStatuses[s]
}

var validOrderStatuses = map[string]bool{
	OrderPending:   true,
	OrderAccepted:  true,
	OrderShipped:   true,
	OrderDelivered: true,
	OrderCancelled: true,
}

func IsValidOrderStatus(s string) bool {
	return validOrderStatuses[s]
}

var orderTransitions = map[string][]string{
	OrderPending:  {OrderAccepted, OrderCancelled},
	OrderAccepted: {OrderShipped, OrderCancelled},
	OrderShipped:  {OrderDelivered},
}

func CanTransitionOrder(from, to string) bool {
	for _, v := range orderTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

var validRoles = map[string]bool{
	RoleUser:   true,
	RoleAdmin:  true,
	RoleVendor: true,
	RoleRider:  true,
}

func IsValidRole(r string) bool {
	return validRoles[r]
}

var validApprovalStatuses = map[string]bool{
	ApprovalPending:  true,
	ApprovalApproved: true,
	ApprovalRejected: true,
}

func IsValidApprovalStatus(s string) bool {
	return validApprovalStatuses[s]
}
