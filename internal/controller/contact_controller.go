package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Mail *service.MailService
}

func NewContactController(m *service.MailService) *ContactController {
	return &ContactController{Mail: m}
}

// POST /contact — reenvía el formulario al relay de mail externo
func (ctl *ContactController) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Mail.SendContact(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "message sent"})
}
