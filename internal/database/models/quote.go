package models

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/rbac"
)

// QuoteOwnerColumn is the owner attribute on the quotes table.
const QuoteOwnerColumn = "quote_owner"

// QuoteStage represents the lifecycle stage of a quote
type QuoteStage string

const (
	QuoteStageDraft     QuoteStage = "draft"
	QuoteStageDelivered QuoteStage = "delivered"
	QuoteStageAccepted  QuoteStage = "accepted"
	QuoteStageRejected  QuoteStage = "rejected"
)

// Quote represents a priced offer attached to a deal
type Quote struct {
	OwnedModel
	QuoteOwner string     `json:"quote_owner" gorm:"size:40;not null;index"`
	Subject    string     `json:"subject" gorm:"size:200;not null" validate:"required,max=200"`
	Stage      QuoteStage `json:"stage" gorm:"type:varchar(50);not null;default:'draft'"`
	DealID     *uuid.UUID `json:"deal_id,omitempty" gorm:"type:uuid;index"`
	ContactID  *uuid.UUID `json:"contact_id,omitempty" gorm:"type:uuid;index"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	Subtotal   float64    `json:"subtotal"`
	Discount   float64    `json:"discount"`
	Tax        float64    `json:"tax"`
	GrandTotal float64    `json:"grand_total"`
}

// TableName returns the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}

// AccessView projects the fields access decisions are made on
func (q Quote) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: q.TenantID, OwnerID: q.QuoteOwner, Deleted: q.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (q Quote) SearchValues() []string {
	return []string{q.Subject}
}
