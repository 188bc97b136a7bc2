package models

import "crm-backend/internal/rbac"

// SubsidiaryOwnerColumn is the owner attribute on the subsidiaries
// table. Organizational entities carry no dedicated owner field; the
// creator acts as owner.
const SubsidiaryOwnerColumn = "created_by"

// Subsidiary represents a branch office of the tenant organization
type Subsidiary struct {
	OwnedModel
	Name    string `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email   string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone" gorm:"size:40"`
	Website string `json:"website" gorm:"size:255"`
	City    string `json:"city" gorm:"size:100"`
	Country string `json:"country" gorm:"size:100"`
	Address string `json:"address" gorm:"size:300" validate:"max=300"`
}

// TableName returns the table name for Subsidiary
func (Subsidiary) TableName() string {
	return "subsidiaries"
}

// AccessView projects the fields access decisions are made on
func (s Subsidiary) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: s.TenantID, OwnerID: s.CreatedBy, Deleted: s.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (s Subsidiary) SearchValues() []string {
	return []string{s.Name, s.Email, s.City}
}
