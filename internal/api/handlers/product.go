package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productService service.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts handles GET /products
// @Summary List accessible products
// @Description Get all products visible to the caller's role within the tenant
// @Tags products
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted products" default(false)
// @Success 200 {array} models.Product "Successfully retrieved products"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	products, err := h.productService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
// @Summary Get product by ID
// @Description Get a specific product by its UUID if the caller may access it
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.Product "Successfully retrieved product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListProductsByOwner handles GET /products/owner/:ownerId
// @Summary List products by owner
// @Description Get products owned by a specific user, when the caller may view that owner's records
// @Tags products
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Product "Successfully retrieved products"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/owner/{ownerId} [get]
func (h *ProductHandler) ListProductsByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	products, err := h.productService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /products/search
// @Summary Search products
// @Description Search accessible products by name, code or category
// @Tags products
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Product "Successfully retrieved products"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	products, err := h.productService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /products
// @Summary Create a new product
// @Description Create a new product owned by the caller unless assigned otherwise
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product "Successfully created product"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating products"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.CreateProduct(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id
// @Summary Update a product
// @Description Update an existing product the caller may access
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body service.UpdateProductRequest true "Product data"
// @Success 200 {object} models.Product "Successfully updated product"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing products"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id
// @Summary Soft-delete a product
// @Description Mark a product as deleted without removing the row
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Successfully deleted product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting products"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.productService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreProduct handles POST /products/:id/restore
// @Summary Restore a soft-deleted product
// @Description Bring a soft-deleted product back into the active set
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.Product "Successfully restored product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring products"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Product is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id}/restore [post]
func (h *ProductHandler) RestoreProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.productService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeProduct handles DELETE /products/:id/purge
// @Summary Permanently delete a product
// @Description Remove a product row entirely, administrators only
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Successfully purged product"
// @Failure 400 {object} ErrorResponse "Invalid product ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /products/{id}/purge [delete]
func (h *ProductHandler) PurgeProduct(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.productService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
