package models

import "crm-backend/internal/rbac"

// LeadOwnerColumn is the owner attribute on the leads table.
const LeadOwnerColumn = "lead_owner"

// LeadStatus represents the qualification stage of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
)

// Lead represents a prospective customer
type Lead struct {
	OwnedModel
	LeadOwner     string     `json:"lead_owner" gorm:"size:40;not null;index"`
	Salutation    string     `json:"salutation" gorm:"size:20"`
	FirstName     string     `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName      string     `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email         string     `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone         string     `json:"phone" gorm:"size:40"`
	Company       string     `json:"company" gorm:"size:200" validate:"max=200"`
	LeadSource    string     `json:"lead_source" gorm:"size:100"`
	LeadStatus    LeadStatus `json:"lead_status" gorm:"type:varchar(50);not null;default:'new'"`
	Industry      string     `json:"industry" gorm:"size:100"`
	AnnualRevenue float64    `json:"annual_revenue"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// AccessView projects the fields access decisions are made on
func (l Lead) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: l.TenantID, OwnerID: l.LeadOwner, Deleted: l.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (l Lead) SearchValues() []string {
	return []string{l.FirstName, l.LastName, l.Email, l.Company}
}
