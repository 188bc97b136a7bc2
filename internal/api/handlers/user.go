package handlers

import (
	"net/http"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the tenant user directory
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
// @Summary List directory users
// @Description Get all users of the caller's tenant, administrators only
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {array} models.User "Successfully retrieved users"
// @Failure 403 {object} ErrorResponse "Role does not permit viewing users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:userId
// @Summary Get directory user
// @Description Get one user of the caller's tenant, administrators only
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.User "Successfully retrieved user"
// @Failure 403 {object} ErrorResponse "Role does not permit viewing users"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Param("userId"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /users
// @Summary Create a directory user
// @Description Add a user to the caller's tenant directory, administrators only
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} models.User "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating users"
// @Failure 409 {object} ErrorResponse "User already exists or reporting chain is invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(&req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /users/:userId
// @Summary Update a directory user
// @Description Update a user of the caller's tenant, administrators only
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param user body service.UpdateUserRequest true "User data"
// @Success 200 {object} models.User "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing users"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Reporting chain is invalid"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Param("userId"), &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:userId
// @Summary Soft-delete a directory user
// @Description Mark a user of the caller's tenant as deleted, administrators only
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 204 "Successfully deleted user"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting users"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Param("userId"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
