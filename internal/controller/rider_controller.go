package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
)

type RiderController struct {
	Service *service.RiderService
}

func NewRiderController(s *service.RiderService) *RiderController {
	return &RiderController{Service: s}
}

// POST /riders — solicitud de alta, queda pending hasta aprobación
func (ctl *RiderController) Apply(c *gin.Context) {
	var req dto.RiderApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := ctl.Service.Apply(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// GET /riders/pending — admin only
func (ctl *RiderController) Pending(c *gin.Context) {
	riders, err := ctl.Service.Pending(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, riders)
}

// GET /riders/available?district=
func (ctl *RiderController) Available(c *gin.Context) {
	riders, err := ctl.Service.Available(c.Request.Context(), c.Query("district"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, riders)
}

// GET /riders/active?search= — admin only
func (ctl *RiderController) Active(c *gin.Context) {
	riders, err := ctl.Service.Active(c.Request.Context(), c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, riders)
}

// PATCH /riders/:id — admin only; aprobar promueve el rol del usuario
func (ctl *RiderController) AdminUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Service.AdminUpdate(c.Request.Context(), id, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rider updated"})
}

// PATCH /riders/cashout/:parcelId — rider only, cobro único
func (ctl *RiderController) CashOut(c *gin.Context) {
	parcelID, ok := parseID(c, "parcelId")
	if !ok {
		return
	}

	amount, err := ctl.Service.CashOut(c.Request.Context(), parcelID, c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cashed out", "amount": amount})
}

// GET /riders/parcels — entregas en curso del rider autenticado
func (ctl *RiderController) MyParcels(c *gin.Context) {
	parcels, err := ctl.Service.MyParcels(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, parcels)
}

// GET /riders/completed-parcels
func (ctl *RiderController) CompletedParcels(c *gin.Context) {
	parcels, err := ctl.Service.CompletedParcels(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, parcels)
}
