package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentController struct {
	Service *service.PaymentService
}

func NewPaymentController(s *service.PaymentService) *PaymentController {
	return &PaymentController{Service: s}
}

// POST /create-payment-intent — delega al gateway externo
func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := ctl.Service.CreateIntent(c.Request.Context(), req.AmountInCents, req.Currency)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

// GET /payments?email= — el caller solo ve sus pagos; admin ve todo
func (ctl *PaymentController) List(c *gin.Context) {
	email := c.Query("email")
	caller := c.GetString("userEmail")

	if email != "" && email != caller && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you cannot view another user's payments"})
		return
	}

	if email == "" {
		if isAdmin(c) {
			payments, err := ctl.Service.ListAll(c.Request.Context())
			if err != nil {
				fail(c, err)
				return
			}
			c.JSON(http.StatusOK, payments)
			return
		}
		email = caller
	}

	payments, err := ctl.Service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// POST /payments — marca pagado + registra el pago (transaccional)
func (ctl *PaymentController) Record(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parcelID, err := primitive.ObjectIDFromHex(req.ParcelID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parcel id format"})
		return
	}

	payment, err := ctl.Service.Record(c.Request.Context(), parcelID, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}
