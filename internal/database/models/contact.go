package models

import "crm-backend/internal/rbac"

// ContactOwnerColumn is the owner attribute on the contacts table.
const ContactOwnerColumn = "contact_owner"

// Contact represents a person at an existing account
type Contact struct {
	OwnedModel
	ContactOwner string `json:"contact_owner" gorm:"size:40;not null;index"`
	Salutation   string `json:"salutation" gorm:"size:20"`
	FirstName    string `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName     string `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email        string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone" gorm:"size:40"`
	Mobile       string `json:"mobile" gorm:"size:40"`
	Title        string `json:"title" gorm:"size:100"`
	Department   string `json:"department" gorm:"size:100"`
	AccountName  string `json:"account_name" gorm:"size:200" validate:"max=200"`
	MailingCity  string `json:"mailing_city" gorm:"size:100"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// AccessView projects the fields access decisions are made on
func (c Contact) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: c.TenantID, OwnerID: c.ContactOwner, Deleted: c.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (c Contact) SearchValues() []string {
	return []string{c.FirstName, c.LastName, c.Email, c.AccountName}
}
