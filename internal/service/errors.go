// errors.go
package service

import "errors"

// Errores de negocio exportados (los mapean los controllers a HTTP).
var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidStatus     = errors.New("estado inválido")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrFinalState        = errors.New("el parcel está en un estado final")

	ErrParcelNotPaid       = errors.New("el parcel no tiene el pago registrado")
	ErrParcelNotAssignable = errors.New("el parcel no está pendiente de asignación")
	ErrRiderNotAvailable   = errors.New("el rider no está disponible")
	ErrParcelNotDelivered  = errors.New("el parcel todavía no fue entregado")
	ErrAlreadyCashedOut    = errors.New("el parcel ya fue cobrado")

	ErrAlreadyApplied     = errors.New("ya existe una solicitud de rider con ese email")
	ErrDuplicateWatch     = errors.New("el producto ya está en la watchlist")
	ErrProductNotApproved = errors.New("el producto no está aprobado")
	ErrInvalidRole        = errors.New("rol inválido")
)
