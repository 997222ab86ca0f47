package controller

import (
	"errors"
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
)

type WatchlistController struct {
	Service *service.WatchlistService
}

func NewWatchlistController(s *service.WatchlistService) *WatchlistController {
	return &WatchlistController{Service: s}
}

// POST /watchlist — 409 si el par (email, productId) ya existe
func (ctl *WatchlistController) Add(c *gin.Context) {
	var req dto.AddWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != c.GetString("userEmail") && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "email must match the authenticated user"})
		return
	}

	w, err := ctl.Service.Add(c.Request.Context(), req)
	if errors.Is(err, service.ErrDuplicateWatch) {
		// el 409 incluye el id del item ya guardado
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "existingId": w.ID.Hex()})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// GET /watchlist — la watchlist del usuario autenticado
func (ctl *WatchlistController) List(c *gin.Context) {
	items, err := ctl.Service.List(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// DELETE /watchlist/:id
func (ctl *WatchlistController) Remove(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.Service.Remove(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from watchlist"})
}
