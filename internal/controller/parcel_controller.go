package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/repository"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ParcelController struct {
	Service *service.ParcelService
}

func NewParcelController(s *service.ParcelService) *ParcelController {
	return &ParcelController{Service: s}
}

// GET /parcels?email=&status=&payment_status=&district=
func (ctl *ParcelController) List(c *gin.Context) {
	filter := repository.ParcelFilter{
		CreatedBy:      c.Query("email"),
		DeliveryStatus: c.Query("status"),
		PaymentStatus:  c.Query("payment_status"),
		District:       c.Query("district"),
	}

	parcels, err := ctl.Service.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, parcels)
}

// POST /parcels
func (ctl *ParcelController) Create(c *gin.Context) {
	var req dto.CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"insertedId": p.ID.Hex(),
		"trackingId": p.TrackingID,
	})
}

// GET /parcels/:id
func (ctl *ParcelController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := ctl.Service.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /parcels/:id — creador o admin
func (ctl *ParcelController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ctl.Service.Delete(c.Request.Context(), id, c.GetString("userEmail"), isAdmin(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "parcel deleted"})
}

// PATCH /parcels/:id/status
func (ctl *ParcelController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateParcelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Service.UpdateStatus(c.Request.Context(), id, req.Status, req.Location, c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// PATCH /parcels/:id/assign-rider — admin only
func (ctl *ParcelController) AssignRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.AssignRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	riderID, err := primitive.ObjectIDFromHex(req.RiderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rider id format"})
		return
	}

	if err := ctl.Service.AssignRider(c.Request.Context(), id, riderID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rider assigned"})
}

// PATCH /parcels/:id — patch genérico de campos editables
func (ctl *ParcelController) Patch(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.PatchParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Service.Patch(c.Request.Context(), id, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "parcel updated"})
}

// GET /parcels/delivery/status-count — admin only
func (ctl *ParcelController) StatusCount(c *gin.Context) {
	counts, err := ctl.Service.StatusCount(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
