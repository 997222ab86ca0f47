// respond.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"parcel-delivery-service/internal/repository"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID valida el formato del identificador antes de tocar la base.
// Un id malformado siempre es 400, nunca llega al repositorio.
func parseID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// fail mapea los errores de negocio a la taxonomía HTTP. Lo inesperado
// es 500 con mensaje genérico y detalle solo en el log.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrDuplicateWatch):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrFinalState),
		errors.Is(err, service.ErrParcelNotPaid),
		errors.Is(err, service.ErrParcelNotAssignable),
		errors.Is(err, service.ErrRiderNotAvailable),
		errors.Is(err, service.ErrParcelNotDelivered),
		errors.Is(err, service.ErrAlreadyCashedOut),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrProductNotApproved),
		errors.Is(err, service.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Println("unexpected error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("userRole") == "admin"
}
