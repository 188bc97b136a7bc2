package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quote operations
type QuoteHandler struct {
	quoteService service.QuoteServiceInterface
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService service.QuoteServiceInterface) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// ListQuotes handles GET /quotes
// @Summary List accessible quotes
// @Description Get all quotes visible to the caller's role within the tenant
// @Tags quotes
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted quotes" default(false)
// @Success 200 {array} models.Quote "Successfully retrieved quotes"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	quotes, err := h.quoteService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// GetQuote handles GET /quotes/:id
// @Summary Get quote by ID
// @Description Get a specific quote by its UUID if the caller may access it
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} models.Quote "Successfully retrieved quote"
// @Failure 400 {object} ErrorResponse "Invalid quote ID"
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "quote not found"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ListQuotesByOwner handles GET /quotes/owner/:ownerId
// @Summary List quotes by owner
// @Description Get quotes owned by a specific user, when the caller may view that owner's records
// @Tags quotes
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Quote "Successfully retrieved quotes"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/owner/{ownerId} [get]
func (h *QuoteHandler) ListQuotesByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// SearchQuotes handles GET /quotes/search
// @Summary Search quotes
// @Description Search accessible quotes by subject
// @Tags quotes
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Quote "Successfully retrieved quotes"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/search [get]
func (h *QuoteHandler) SearchQuotes(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// CreateQuote handles POST /quotes
// @Summary Create a new quote
// @Description Create a new quote owned by the caller unless assigned otherwise
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body service.CreateQuoteRequest true "Quote data"
// @Success 201 {object} models.Quote "Successfully created quote"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating quotes"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.quoteService.CreateQuote(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// UpdateQuote handles PUT /quotes/:id
// @Summary Update a quote
// @Description Update an existing quote the caller may access
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Param quote body service.UpdateQuoteRequest true "Quote data"
// @Success 200 {object} models.Quote "Successfully updated quote"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing quotes"
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quote, err := h.quoteService.UpdateQuote(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// DeleteQuote handles DELETE /quotes/:id
// @Summary Soft-delete a quote
// @Description Mark a quote as deleted without removing the row
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 204 "Successfully deleted quote"
// @Failure 400 {object} ErrorResponse "Invalid quote ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting quotes"
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.quoteService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreQuote handles POST /quotes/:id/restore
// @Summary Restore a soft-deleted quote
// @Description Bring a soft-deleted quote back into the active set
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 200 {object} models.Quote "Successfully restored quote"
// @Failure 400 {object} ErrorResponse "Invalid quote ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring quotes"
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 409 {object} ErrorResponse "Quote is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/{id}/restore [post]
func (h *QuoteHandler) RestoreQuote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.quoteService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeQuote handles DELETE /quotes/:id/purge
// @Summary Permanently delete a quote
// @Description Remove a quote row entirely, administrators only
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID (UUID)"
// @Success 204 "Successfully purged quote"
// @Failure 400 {object} ErrorResponse "Invalid quote ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Quote not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /quotes/{id}/purge [delete]
func (h *QuoteHandler) PurgeQuote(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.quoteService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
