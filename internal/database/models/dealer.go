package models

import "crm-backend/internal/rbac"

// DealerOwnerColumn is the owner attribute on the dealers table. Like
// subsidiaries, dealers are owned by whoever created them.
const DealerOwnerColumn = "created_by"

// Dealer represents an external sales partner of the tenant
type Dealer struct {
	OwnedModel
	Name           string  `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Email          string  `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone          string  `json:"phone" gorm:"size:40"`
	Territory      string  `json:"territory" gorm:"size:100"`
	CommissionRate float64 `json:"commission_rate" validate:"min=0,max=100"`
}

// TableName returns the table name for Dealer
func (Dealer) TableName() string {
	return "dealers"
}

// AccessView projects the fields access decisions are made on
func (d Dealer) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: d.TenantID, OwnerID: d.CreatedBy, Deleted: d.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (d Dealer) SearchValues() []string {
	return []string{d.Name, d.Email, d.Territory}
}
