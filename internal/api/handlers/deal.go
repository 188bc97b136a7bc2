package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DealHandler handles HTTP requests for deal operations
type DealHandler struct {
	dealService service.DealServiceInterface
}

// NewDealHandler creates a new deal handler
func NewDealHandler(dealService service.DealServiceInterface) *DealHandler {
	return &DealHandler{
		dealService: dealService,
	}
}

// ListDeals handles GET /deals
// @Summary List accessible deals
// @Description Get all deals visible to the caller's role within the tenant
// @Tags deals
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted deals" default(false)
// @Success 200 {array} models.Deal "Successfully retrieved deals"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	deals, err := h.dealService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deals)
}

// GetDeal handles GET /deals/:id
// @Summary Get deal by ID
// @Description Get a specific deal by its UUID if the caller may access it
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 200 {object} models.Deal "Successfully retrieved deal"
// @Failure 400 {object} ErrorResponse "Invalid deal ID"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	deal, err := h.dealService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "deal not found"})
		return
	}

	c.JSON(http.StatusOK, deal)
}

// ListDealsByOwner handles GET /deals/owner/:ownerId
// @Summary List deals by owner
// @Description Get deals owned by a specific user, when the caller may view that owner's records
// @Tags deals
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Deal "Successfully retrieved deals"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/owner/{ownerId} [get]
func (h *DealHandler) ListDealsByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	deals, err := h.dealService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deals)
}

// SearchDeals handles GET /deals/search
// @Summary Search deals
// @Description Search accessible deals by deal name or source
// @Tags deals
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Deal "Successfully retrieved deals"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/search [get]
func (h *DealHandler) SearchDeals(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	deals, err := h.dealService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deals)
}

// CreateDeal handles POST /deals
// @Summary Create a new deal
// @Description Create a new deal owned by the caller unless assigned otherwise
// @Tags deals
// @Accept json
// @Produce json
// @Param deal body service.CreateDealRequest true "Deal data"
// @Success 201 {object} models.Deal "Successfully created deal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating deals"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	deal, err := h.dealService.CreateDeal(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// UpdateDeal handles PUT /deals/:id
// @Summary Update a deal
// @Description Update an existing deal the caller may access
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Param deal body service.UpdateDealRequest true "Deal data"
// @Success 200 {object} models.Deal "Successfully updated deal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing deals"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/{id} [put]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	deal, err := h.dealService.UpdateDeal(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deal)
}

// DeleteDeal handles DELETE /deals/:id
// @Summary Soft-delete a deal
// @Description Mark a deal as deleted without removing the row
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 204 "Successfully deleted deal"
// @Failure 400 {object} ErrorResponse "Invalid deal ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting deals"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.dealService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreDeal handles POST /deals/:id/restore
// @Summary Restore a soft-deleted deal
// @Description Bring a soft-deleted deal back into the active set
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 200 {object} models.Deal "Successfully restored deal"
// @Failure 400 {object} ErrorResponse "Invalid deal ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring deals"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Deal is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/{id}/restore [post]
func (h *DealHandler) RestoreDeal(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.dealService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeDeal handles DELETE /deals/:id/purge
// @Summary Permanently delete a deal
// @Description Remove a deal row entirely, administrators only
// @Tags deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID (UUID)"
// @Success 204 "Successfully purged deal"
// @Failure 400 {object} ErrorResponse "Invalid deal ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /deals/{id}/purge [delete]
func (h *DealHandler) PurgeDeal(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.dealService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
