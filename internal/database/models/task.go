package models

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/rbac"
)

// TaskOwnerColumn is the owner attribute on the tasks table. Tasks are
// owned by their assignee, not their creator.
const TaskOwnerColumn = "assigned_to"

// TaskStatus represents the completion state of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDeferred   TaskStatus = "deferred"
)

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a follow-up item assigned to a user
type Task struct {
	OwnedModel
	AssignedTo  string       `json:"assigned_to" gorm:"size:40;not null;index"`
	Subject     string       `json:"subject" gorm:"size:200;not null" validate:"required,max=200"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(50);not null;default:'open'"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(50);not null;default:'normal'"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	RelatedType string       `json:"related_type" gorm:"size:50"`
	RelatedID   *uuid.UUID   `json:"related_id,omitempty" gorm:"type:uuid;index"`
	Description string       `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// AccessView projects the fields access decisions are made on
func (t Task) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: t.TenantID, OwnerID: t.AssignedTo, Deleted: t.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (t Task) SearchValues() []string {
	return []string{t.Subject, t.Description}
}
