package models

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/rbac"
)

// DealOwnerColumn is the owner attribute on the deals table.
const DealOwnerColumn = "deal_owner"

// DealStage represents the pipeline stage of a deal
type DealStage string

const (
	DealStageQualification DealStage = "qualification"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed_won"
	DealStageClosedLost    DealStage = "closed_lost"
)

// Deal represents an opportunity in the pipeline
type Deal struct {
	OwnedModel
	DealOwner   string     `json:"deal_owner" gorm:"size:40;not null;index"`
	DealName    string     `json:"deal_name" gorm:"size:200;not null" validate:"required,max=200"`
	Stage       DealStage  `json:"stage" gorm:"type:varchar(50);not null;default:'qualification'"`
	Amount      float64    `json:"amount"`
	Probability int        `json:"probability" validate:"min=0,max=100"`
	CloseDate   *time.Time `json:"close_date,omitempty"`
	LeadSource  string     `json:"lead_source" gorm:"size:100"`
	ContactID   *uuid.UUID `json:"contact_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for Deal
func (Deal) TableName() string {
	return "deals"
}

// AccessView projects the fields access decisions are made on
func (d Deal) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: d.TenantID, OwnerID: d.DealOwner, Deleted: d.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (d Deal) SearchValues() []string {
	return []string{d.DealName, d.LeadSource}
}
