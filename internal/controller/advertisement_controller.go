package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AdvertisementController struct {
	Service *service.AdvertisementService
}

func NewAdvertisementController(s *service.AdvertisementService) *AdvertisementController {
	return &AdvertisementController{Service: s}
}

// POST /advertisements — vendor only
func (ctl *AdvertisementController) Create(c *gin.Context) {
	var req dto.CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.VendorEmail != c.GetString("userEmail") {
		c.JSON(http.StatusForbidden, gin.H{"error": "vendorEmail must match the authenticated vendor"})
		return
	}

	a, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GET /advertisements — vitrina pública (solo aprobadas)
func (ctl *AdvertisementController) PublicList(c *gin.Context) {
	ads, err := ctl.Service.PublicList(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// GET /admin/advertisements — admin only
func (ctl *AdvertisementController) AdminList(c *gin.Context) {
	ads, err := ctl.Service.AdminList(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

// PATCH /admin/advertisements/:id/status
func (ctl *AdvertisementController) Moderate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Service.Moderate(c.Request.Context(), id, req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "advertisement status updated"})
}

// DELETE /admin/advertisements/:id
func (ctl *AdvertisementController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "advertisement deleted"})
}
