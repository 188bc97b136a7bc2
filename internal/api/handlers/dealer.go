package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DealerHandler handles HTTP requests for dealer operations
type DealerHandler struct {
	dealerService service.DealerServiceInterface
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(dealerService service.DealerServiceInterface) *DealerHandler {
	return &DealerHandler{
		dealerService: dealerService,
	}
}

// ListDealers handles GET /dealers
// @Summary List accessible dealers
// @Description Get all dealers visible to the caller's role within the tenant
// @Tags dealers
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted dealers" default(false)
// @Success 200 {array} models.Dealer "Successfully retrieved dealers"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers [get]
func (h *DealerHandler) ListDealers(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	dealers, err := h.dealerService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dealers)
}

// GetDealer handles GET /dealers/:id
// @Summary Get dealer by ID
// @Description Get a specific dealer by its UUID if the caller may access it
// @Tags dealers
// @Accept json
// @Produce json
// @Param id path string true "Dealer ID (UUID)"
// @Success 200 {object} models.Dealer "Successfully retrieved dealer"
// @Failure 400 {object} ErrorResponse "Invalid dealer ID"
// @Failure 404 {object} ErrorResponse "Dealer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/{id} [get]
func (h *DealerHandler) GetDealer(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	dealer, err := h.dealerService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if dealer == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "dealer not found"})
		return
	}

	c.JSON(http.StatusOK, dealer)
}

// ListDealersByOwner handles GET /dealers/owner/:ownerId
// @Summary List dealers by owner
// @Description Get dealers owned by a specific user, when the caller may view that owner's records
// @Tags dealers
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Dealer "Successfully retrieved dealers"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/owner/{ownerId} [get]
func (h *DealerHandler) ListDealersByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	dealers, err := h.dealerService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dealers)
}

// SearchDealers handles GET /dealers/search
// @Summary Search dealers
// @Description Search accessible dealers by name, email or territory
// @Tags dealers
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Dealer "Successfully retrieved dealers"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/search [get]
func (h *DealerHandler) SearchDealers(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	dealers, err := h.dealerService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dealers)
}

// CreateDealer handles POST /dealers
// @Summary Create a new dealer
// @Description Create a new dealer recorded against the caller
// @Tags dealers
// @Accept json
// @Produce json
// @Param dealer body service.CreateDealerRequest true "Dealer data"
// @Success 201 {object} models.Dealer "Successfully created dealer"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating dealers"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers [post]
func (h *DealerHandler) CreateDealer(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dealer, err := h.dealerService.CreateDealer(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dealer)
}

// UpdateDealer handles PUT /dealers/:id
// @Summary Update a dealer
// @Description Update an existing dealer the caller may access
// @Tags dealers
// @Accept json
// @Produce json
// @Param id path string true "Dealer ID (UUID)"
// @Param dealer body service.UpdateDealerRequest true "Dealer data"
// @Success 200 {object} models.Dealer "Successfully updated dealer"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing dealers"
// @Failure 404 {object} ErrorResponse "Dealer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/{id} [put]
func (h *DealerHandler) UpdateDealer(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateDealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	dealer, err := h.dealerService.UpdateDealer(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dealer)
}

// DeleteDealer handles DELETE /dealers/:id
// @Summary Soft-delete a dealer
// @Description Mark a dealer as deleted without removing the row
// @Tags dealers
// @Accept json
// @Produce json
// @Param id path string true "Dealer ID (UUID)"
// @Success 204 "Successfully deleted dealer"
// @Failure 400 {object} ErrorResponse "Invalid dealer ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting dealers"
// @Failure 404 {object} ErrorResponse "Dealer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/{id} [delete]
func (h *DealerHandler) DeleteDealer(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.dealerService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreDealer handles POST /dealers/:id/restore
// @Summary Restore a soft-deleted dealer
// @Description Bring a soft-deleted dealer back into the active set
// @Tags dealers
// @Accept json
// @Produce json
// @Param id path string true "Dealer ID (UUID)"
// @Success 200 {object} models.Dealer "Successfully restored dealer"
// @Failure 400 {object} ErrorResponse "Invalid dealer ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring dealers"
// @Failure 404 {object} ErrorResponse "Dealer not found"
// @Failure 409 {object} ErrorResponse "Dealer is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/{id}/restore [post]
func (h *DealerHandler) RestoreDealer(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.dealerService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeDealer handles DELETE /dealers/:id/purge
// @Summary Permanently delete a dealer
// @Description Remove a dealer row entirely, administrators only
// @Tags dealers
// @Accept json
// @Produce json
// @Param id path string true "Dealer ID (UUID)"
// @Success 204 "Successfully purged dealer"
// @Failure 400 {object} ErrorResponse "Invalid dealer ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Dealer not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /dealers/{id}/purge [delete]
func (h *DealerHandler) PurgeDealer(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.dealerService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
