package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a directory entry: a CRM user inside one tenant. UserID is the
// stable human-readable identity that owner fields on records reference;
// ReportingTo points at the UserID of the user's manager and must stay
// within the same tenant.
type User struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      string     `json:"user_id" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	Email       string     `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_email_active,where:is_deleted = false" validate:"required,email,max=255"`
	FirstName   string     `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName    string     `json:"last_name" gorm:"size:100" validate:"max=100"`
	Role        string     `json:"role" gorm:"size:40;not null;default:'SALES_REP'" validate:"required"`
	TenantID    string     `json:"tenant_id" gorm:"size:64;not null;index" validate:"required"`
	ReportingTo *string    `json:"reporting_to,omitempty" gorm:"size:40;index"`
	IsDeleted   bool       `json:"is_deleted" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets the UUID if not already set
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
