package handlers

import (
	"net/http"
	"strconv"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for task operations
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks handles GET /tasks
// @Summary List accessible tasks
// @Description Get all tasks visible to the caller's role within the tenant
// @Tags tasks
// @Accept json
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted tasks" default(false)
// @Success 200 {array} models.Task "Successfully retrieved tasks"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	includeDeleted, _ := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))

	tasks, err := h.taskService.ListForUser(user, includeDeleted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /tasks/:id
// @Summary Get task by ID
// @Description Get a specific task by its UUID if the caller may access it
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} models.Task "Successfully retrieved task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetByIDForUser(id, user)
	if err != nil {
		respondError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasksByOwner handles GET /tasks/owner/:ownerId
// @Summary List tasks by owner
// @Description Get tasks owned by a specific user, when the caller may view that owner's records
// @Tags tasks
// @Accept json
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {array} models.Task "Successfully retrieved tasks"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/owner/{ownerId} [get]
func (h *TaskHandler) ListTasksByOwner(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByOwnerForUser(c.Param("ownerId"), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// SearchTasks handles GET /tasks/search
// @Summary Search tasks
// @Description Search accessible tasks by subject or description
// @Tags tasks
// @Accept json
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} models.Task "Successfully retrieved tasks"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/search [get]
func (h *TaskHandler) SearchTasks(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.SearchForUser(user, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /tasks
// @Summary Create a new task
// @Description Create a new task assigned to the caller unless assigned otherwise
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} models.Task "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit creating tasks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(&req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id
// @Summary Update a task
// @Description Update an existing task the caller may access
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Task data"
// @Success 200 {object} models.Task "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role does not permit editing tasks"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	task, err := h.taskService.UpdateTask(id, &req, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Soft-delete a task
// @Description Mark a task as deleted without removing the row
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Successfully deleted task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 403 {object} ErrorResponse "Role does not permit deleting tasks"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.taskService.SoftDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreTask handles POST /tasks/:id/restore
// @Summary Restore a soft-deleted task
// @Description Bring a soft-deleted task back into the active set
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} models.Task "Successfully restored task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 403 {object} ErrorResponse "Role does not permit restoring tasks"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Task is not deleted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/restore [post]
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.taskService.RestoreForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restored": true})
}

// PurgeTask handles DELETE /tasks/:id/purge
// @Summary Permanently delete a task
// @Description Remove a task row entirely, administrators only
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Successfully purged task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 403 {object} ErrorResponse "Hard delete is restricted to administrators"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tasks/{id}/purge [delete]
func (h *TaskHandler) PurgeTask(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseRecordID(c)
	if !ok {
		return
	}

	if err := h.taskService.HardDeleteForUser(id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
