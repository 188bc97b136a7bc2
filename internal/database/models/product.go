package models

import "crm-backend/internal/rbac"

// ProductOwnerColumn is the owner attribute on the products table.
const ProductOwnerColumn = "product_owner"

// Product represents a sellable product or service
type Product struct {
	OwnedModel
	ProductOwner    string  `json:"product_owner" gorm:"size:40;not null;index"`
	ProductName     string  `json:"product_name" gorm:"size:200;not null" validate:"required,max=200"`
	ProductCode     string  `json:"product_code" gorm:"size:64;index" validate:"max=64"`
	Category        string  `json:"category" gorm:"size:100"`
	UnitPrice       float64 `json:"unit_price"`
	QuantityInStock int     `json:"quantity_in_stock"`
	Active          bool    `json:"active" gorm:"default:true"`
	Description     string  `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// AccessView projects the fields access decisions are made on
func (p Product) AccessView() rbac.RecordView {
	return rbac.RecordView{TenantID: p.TenantID, OwnerID: p.ProductOwner, Deleted: p.IsDeleted}
}

// SearchValues returns the text fields substring search runs over
func (p Product) SearchValues() []string {
	return []string{p.ProductName, p.ProductCode, p.Category}
}
