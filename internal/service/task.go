package service

import (
	"time"

	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskService provides task business logic on top of the access engine.
// Tasks are owned by their assignee, so access follows the assignee,
// not the creator.
type TaskService struct {
	*AccessEngine[models.Task]
	validator *validator.Validate
}

// Ensure TaskService implements TaskServiceInterface
var _ TaskServiceInterface = (*TaskService)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(store OwnedStore[models.Task], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *TaskService {
	return &TaskService{
		AccessEngine: NewAccessEngine(rbac.ResourceTasks, "task", models.TaskOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	AssignedTo  string     `json:"assigned_to" validate:"max=40"`
	Subject     string     `json:"subject" validate:"required,max=200"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low normal high"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	RelatedType string     `json:"related_type" validate:"max=50"`
	RelatedID   *uuid.UUID `json:"related_id,omitempty"`
	Description string     `json:"description" validate:"max=500"`
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	AssignedTo  *string    `json:"assigned_to,omitempty" validate:"omitempty,max=40"`
	Subject     *string    `json:"subject,omitempty" validate:"omitempty,max=200"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=open in_progress completed deferred"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=low normal high"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateTask creates a new task assigned to the creator unless an
// assignee is given
func (s *TaskService) CreateTask(req *CreateTaskRequest, user rbac.User) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	assignee := req.AssignedTo
	if assignee == "" {
		assignee = user.UserID
	}
	priority := models.TaskPriority(req.Priority)
	if priority == "" {
		priority = models.TaskPriorityNormal
	}

	task := &models.Task{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		AssignedTo:  assignee,
		Subject:     req.Subject,
		Status:      models.TaskStatusOpen,
		Priority:    priority,
		DueDate:     req.DueDate,
		RelatedType: req.RelatedType,
		RelatedID:   req.RelatedID,
		Description: req.Description,
	}

	if err := s.CreateForUser(task, user); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask updates an existing task the user may access
func (s *TaskService) UpdateTask(id uuid.UUID, req *UpdateTaskRequest, user rbac.User) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	task, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.ErrTaskNotFound
	}

	if req.AssignedTo != nil {
		task.AssignedTo = *req.AssignedTo
	}
	if req.Subject != nil {
		task.Subject = *req.Subject
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	task.UpdatedBy = user.UserID

	if err := s.SaveForUser(task, user); err != nil {
		return nil, err
	}
	return task, nil
}
