package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead operations
type LeadHandler struct {
	leadService service.LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService service.LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// ListLeads handles GET /leads
// @Summary List accessible leads
// @Description Get all leads visible to the caller's role within the tenant
// @Tags leads
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted leads" default(false)
// @Success 200 {array} models.Lead "Successfully retrieved leads"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	leads, err := h.leadService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead handles GET /leads/:id
// @Summary Get lead by ID
// @Description Get a specific lead by its UUID if the caller may access it
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} models.Lead "Successfully retrieved lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	lead, err := h.leadService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "lead not found"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ListLeadsByOwner handles GET /leads/owner/:ownerId
// @Summary List leads by owner
// @Description Get leads owned by a specific user, when the caller may view that owner's records
// @Tags leads
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Lead "Successfully retrieved leads"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/owner/{ownerId} [get]
func (h *LeadHandler) ListLeadsByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	leads, err := h.leadService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// SearchLeads handles GET /leads/search
// @Summary Search leads
// @Description Search accessible leads by name, email or company
// @Tags leads
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Lead "Successfully retrieved leads"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/search [get]
func (h *LeadHandler) SearchLeads(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	leads, err := h.leadService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leads)
}

// CreateLead handles POST /leads
// @Summary Create a new lead
// @Description Create a new lead owned by the caller unless assigned otherwise
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body service.CreateLeadRequest true "Lead data"
// @Success 201 {object} models.Lead "Successfully created lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating leads"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lead, err := h.leadService.CreateLead(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// UpdateLead handles PUT /leads/:id
// @Summary Update a lead
// @Description Update an existing lead the caller may access
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Param lead body service.UpdateLeadRequest true "Lead data"
// @Success 200 {object} models.Lead "Successfully updated lead"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing leads"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	lead, err := h.leadService.UpdateLead(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead handles DELETE /leads/:id
// @Summary Soft-delete a lead
// @Description Mark a lead as deleted without removing the row
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 204 "Successfully deleted lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting leads"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.leadService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreLead handles POST /leads/:id/restore
// @Summary Restore a soft-deleted lead
// @Description Bring a soft-deleted lead back into the active set
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 200 {object} models.Lead "Successfully restored lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring leads"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Lead is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/restore [post]
func (h *LeadHandler) RestoreLead(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.leadService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeLead handles DELETE /leads/:id/purge
// @Summary Permanently delete a lead
// @Description Remove a lead row entirely, administrators only
// @Tags leads
// @Accept json
// @Produce json
// @Param id path string true "Lead ID (UUID)"
// @Success 204 "Successfully purged lead"
// @Failure 400 {object} ErrorResponse "Invalid lead ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /leads/{id}/purge [delete]
func (h *LeadHandler) PurgeLead(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.leadService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
