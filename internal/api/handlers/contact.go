package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests for contact operations
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ListContacts handles GET /contacts
// @Summary List accessible contacts
// @Description Get all contacts visible to the caller's role within the tenant
// @Tags contacts
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted contacts" default(false)
// @Success 200 {array} models.Contact "Successfully retrieved contacts"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	contacts, err := h.contactService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact handles GET /contacts/:id
// @Summary Get contact by ID
// @Description Get a specific contact by its UUID if the caller may access it
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} models.Contact "Successfully retrieved contact"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if contact == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "contact not found"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ListContactsByOwner handles GET /contacts/owner/:ownerId
// @Summary List contacts by owner
// @Description Get contacts owned by a specific user, when the caller may view that owner's records
// @Tags contacts
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Contact "Successfully retrieved contacts"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/owner/{ownerId} [get]
func (h *ContactHandler) ListContactsByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	contacts, err := h.contactService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// SearchContacts handles GET /contacts/search
// @Summary Search contacts
// @Description Search accessible contacts by name, email or account
// @Tags contacts
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Contact "Successfully retrieved contacts"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/search [get]
func (h *ContactHandler) SearchContacts(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	contacts, err := h.contactService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// CreateContact handles POST /contacts
// @Summary Create a new contact
// @Description Create a new contact owned by the caller unless assigned otherwise
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} models.Contact "Successfully created contact"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating contacts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contact, err := h.contactService.CreateContact(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// UpdateContact handles PUT /contacts/:id
// @Summary Update a contact
// @Description Update an existing contact the caller may access
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Contact data"
// @Success 200 {object} models.Contact "Successfully updated contact"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing contacts"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contact, err := h.contactService.UpdateContact(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /contacts/:id
// @Summary Soft-delete a contact
// @Description Mark a contact as deleted without removing the row
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 204 "Successfully deleted contact"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting contacts"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.contactService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreContact handles POST /contacts/:id/restore
// @Summary Restore a soft-deleted contact
// @Description Bring a soft-deleted contact back into the active set
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} models.Contact "Successfully restored contact"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring contacts"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 409 {object} ErrorResponse "Contact is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id}/restore [post]
func (h *ContactHandler) RestoreContact(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.contactService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeContact handles DELETE /contacts/:id/purge
// @Summary Permanently delete a contact
// @Description Remove a contact row entirely, administrators only
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 204 "Successfully purged contact"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id}/purge [delete]
func (h *ContactHandler) PurgeContact(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.contactService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
