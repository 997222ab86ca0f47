package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
)

type TrackingController struct {
	Service *service.TrackingService
}

func NewTrackingController(s *service.TrackingService) *TrackingController {
	return &TrackingController{Service: s}
}

// POST /tracking — append al historial
func (ctl *TrackingController) Append(c *gin.Context) {
	var req dto.AppendTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UpdatedBy == "" {
		req.UpdatedBy = c.GetString("userEmail")
	}

	e, err := ctl.Service.Append(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GET /tracking/:trackingId — historial ascendente, público
func (ctl *TrackingController) History(c *gin.Context) {
	events, err := ctl.Service.History(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
