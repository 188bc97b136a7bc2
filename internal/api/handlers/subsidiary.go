package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubsidiaryHandler handles HTTP requests for subsidiary operations
type SubsidiaryHandler struct {
	subsidiaryService service.SubsidiaryServiceInterface
}

// NewSubsidiaryHandler creates a new subsidiary handler
func NewSubsidiaryHandler(subsidiaryService service.SubsidiaryServiceInterface) *SubsidiaryHandler {
	return &SubsidiaryHandler{
		subsidiaryService: subsidiaryService,
	}
}

// ListSubsidiaries handles GET /subsidiaries
// @Summary List accessible subsidiaries
// @Description Get all subsidiaries visible to the caller's role within the tenant
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted subsidiaries" default(false)
// @Success 200 {array} models.Subsidiary "Successfully retrieved subsidiaries"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries [get]
func (h *SubsidiaryHandler) ListSubsidiaries(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	subsidiaries, err := h.subsidiaryService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subsidiaries)
}

// GetSubsidiary handles GET /subsidiaries/:id
// @Summary Get subsidiary by ID
// @Description Get a specific subsidiary by its UUID if the caller may access it
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param id path string true "Subsidiary ID (UUID)"
// @Success 200 {object} models.Subsidiary "Successfully retrieved subsidiary"
// @Failure 400 {object} ErrorResponse "Invalid subsidiary ID"
// @Failure 404 {object} ErrorResponse "Subsidiary not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/{id} [get]
func (h *SubsidiaryHandler) GetSubsidiary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	subsidiary, err := h.subsidiaryService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if subsidiary == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "subsidiary not found"})
		return
	}

	c.JSON(http.StatusOK, subsidiary)
}

// ListSubsidiariesByOwner handles GET /subsidiaries/owner/:ownerId
// @Summary List subsidiaries by owner
// @Description Get subsidiaries owned by a specific user, when the caller may view that owner's records
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Subsidiary "Successfully retrieved subsidiaries"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/owner/{ownerId} [get]
func (h *SubsidiaryHandler) ListSubsidiariesByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	subsidiaries, err := h.subsidiaryService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subsidiaries)
}

// SearchSubsidiaries handles GET /subsidiaries/search
// @Summary Search subsidiaries
// @Description Search accessible subsidiaries by name, email or city
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Subsidiary "Successfully retrieved subsidiaries"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/search [get]
func (h *SubsidiaryHandler) SearchSubsidiaries(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	subsidiaries, err := h.subsidiaryService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subsidiaries)
}

// CreateSubsidiary handles POST /subsidiaries
// @Summary Create a new subsidiary
// @Description Create a new subsidiary recorded against the caller
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param subsidiary body service.CreateSubsidiaryRequest true "Subsidiary data"
// @Success 201 {object} models.Subsidiary "Successfully created subsidiary"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating subsidiaries"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries [post]
func (h *SubsidiaryHandler) CreateSubsidiary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateSubsidiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subsidiary, err := h.subsidiaryService.CreateSubsidiary(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subsidiary)
}

// UpdateSubsidiary handles PUT /subsidiaries/:id
// @Summary Update a subsidiary
// @Description Update an existing subsidiary the caller may access
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param id path string true "Subsidiary ID (UUID)"
// @Param subsidiary body service.UpdateSubsidiaryRequest true "Subsidiary data"
// @Success 200 {object} models.Subsidiary "Successfully updated subsidiary"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing subsidiaries"
// @Failure 404 {object} ErrorResponse "Subsidiary not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/{id} [put]
func (h *SubsidiaryHandler) UpdateSubsidiary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateSubsidiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subsidiary, err := h.subsidiaryService.UpdateSubsidiary(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subsidiary)
}

// DeleteSubsidiary handles DELETE /subsidiaries/:id
// @Summary Soft-delete a subsidiary
// @Description Mark a subsidiary as deleted without removing the row
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param id path string true "Subsidiary ID (UUID)"
// @Success 204 "Successfully deleted subsidiary"
// @Failure 400 {object} ErrorResponse "Invalid subsidiary ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting subsidiaries"
// @Failure 404 {object} ErrorResponse "Subsidiary not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/{id} [delete]
func (h *SubsidiaryHandler) DeleteSubsidiary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.subsidiaryService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreSubsidiary handles POST /subsidiaries/:id/restore
// @Summary Restore a soft-deleted subsidiary
// @Description Bring a soft-deleted subsidiary back into the active set
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param id path string true "Subsidiary ID (UUID)"
// @Success 200 {object} models.Subsidiary "Successfully restored subsidiary"
// @Failure 400 {object} ErrorResponse "Invalid subsidiary ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring subsidiaries"
// @Failure 404 {object} ErrorResponse "Subsidiary not found"
// @Failure 409 {object} ErrorResponse "Subsidiary is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/{id}/restore [post]
func (h *SubsidiaryHandler) RestoreSubsidiary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.subsidiaryService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeSubsidiary handles DELETE /subsidiaries/:id/purge
// @Summary Permanently delete a subsidiary
// @Description Remove a subsidiary row entirely, administrators only
// @Tags subsidiaries
// @Accept json
// @Produce json
// @Param id path string true "Subsidiary ID (UUID)"
// @Success 204 "Successfully purged subsidiary"
// @Failure 400 {object} ErrorResponse "Invalid subsidiary ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Subsidiary not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /subsidiaries/{id}/purge [delete]
func (h *SubsidiaryHandler) PurgeSubsidiary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.subsidiaryService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
