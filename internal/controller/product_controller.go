package controller

import (
	"net/http"

	"parcel-delivery-service/internal/dto"
	"parcel-delivery-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *service.ProductService
}

func NewProductController(s *service.ProductService) *ProductController {
	return &ProductController{Service: s}
}

// GET /products?category=&search= — catálogo público (solo aprobados)
func (ctl *ProductController) PublicList(c *gin.Context) {
	products, err := ctl.Service.PublicList(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /products/:id
func (ctl *ProductController) Get(c *gin.Context) {
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

// POST /vendor/products — el vendor publica a su propio nombre
func (ctl *ProductController) VendorCreate(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.VendorEmail != c.GetString("userEmail") {
		c.JSON(http.StatusForbidden, gin.H{"error": "vendorEmail must match the authenticated vendor"})
		return
	}

	p, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /vendor/products — los productos del vendor autenticado
func (ctl *ProductController) VendorList(c *gin.Context) {
	products, err := ctl.Service.VendorList(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// PATCH /vendor/products/:id
func (ctl *ProductController) VendorUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.Service.VendorUpdate(c.Request.Context(), id, c.GetString("userEmail"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DELETE /vendor/products/:id
func (ctl *ProductController) VendorDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := ctl.Service.VendorDelete(c.Request.Context(), id, c.GetString("userEmail"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// GET /admin/products?status= — admin only
func (ctl *ProductController) AdminList(c *gin.Context) {
	products, err := ctl.Service.AdminList(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// PATCH /admin/products/:id/status — aprobación/rechazo
func (ctl *ProductController) Moderate(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "product status updated"})
}

// POST /api/products/:id/reviews
func (ctl *ProductController) AddReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.Service.AddReview(c.Request.Context(), id, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "review added"})
}

// GET /api/products/:id/reviews — público
func (ctl *ProductController) Reviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := ctl.Service.Reviews(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
