package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedModel provides the common fields for every tenant-scoped CRM record.
// Deletion is soft by default: IsDeleted flips, the row stays. Physical
// removal only happens through the admin-gated purge path.
type OwnedModel struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID  string          `json:"tenant_id" gorm:"size:64;not null;index" validate:"required"`
	CreatedAt time.Time       `json:"created_at"`
	CreatedBy string          `json:"created_by" gorm:"size:40"`
	UpdatedAt time.Time       `json:"updated_at"`
	UpdatedBy string          `json:"updated_by" gorm:"size:40"`
	IsDeleted bool            `json:"is_deleted" gorm:"not null;default:false;index"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty"`
	DeletedBy string          `json:"deleted_by,omitempty" gorm:"size:40"`
	Metadata  json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// BeforeCreate sets the UUID if not already set
func (base *OwnedModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
