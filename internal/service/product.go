package service

import (
	"crm-backend/internal/database/models"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/rbac"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProductService provides product business logic on top of the access engine
type ProductService struct {
	*AccessEngine[models.Product]
	validator *validator.Validate
}

// Ensure ProductService implements ProductServiceInterface
var _ ProductServiceInterface = (*ProductService)(nil)

// NewProductService creates a new ProductService
func NewProductService(store OwnedStore[models.Product], policy *rbac.Policy, compiler *rbac.Compiler, validator *validator.Validate) *ProductService {
	return &ProductService{
		AccessEngine: NewAccessEngine(rbac.ResourceProducts, "product", models.ProductOwnerColumn, store, policy, compiler),
		validator:    validator,
	}
}

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	ProductOwner    string  `json:"product_owner" validate:"max=40"`
	ProductName     string  `json:"product_name" validate:"required,max=200"`
	ProductCode     string  `json:"product_code" validate:"max=64"`
	Category        string  `json:"category" validate:"max=100"`
	UnitPrice       float64 `json:"unit_price" validate:"min=0"`
	QuantityInStock int     `json:"quantity_in_stock" validate:"min=0"`
	Description     string  `json:"description" validate:"max=500"`
}

// UpdateProductRequest represents the request to update a product
type UpdateProductRequest struct {
	ProductOwner    *string  `json:"product_owner,omitempty" validate:"omitempty,max=40"`
	ProductName     *string  `json:"product_name,omitempty" validate:"omitempty,max=200"`
	ProductCode     *string  `json:"product_code,omitempty" validate:"omitempty,max=64"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	UnitPrice       *float64 `json:"unit_price,omitempty" validate:"omitempty,min=0"`
	QuantityInStock *int     `json:"quantity_in_stock,omitempty" validate:"omitempty,min=0"`
	Active          *bool    `json:"active,omitempty"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateProduct creates a new product owned by the creator unless
// explicitly assigned to someone else
func (s *ProductService) CreateProduct(req *CreateProductRequest, user rbac.User) (*models.Product, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	owner := req.ProductOwner
	if owner == "" {
		owner = user.UserID
	}

	product := &models.Product{
		OwnedModel: models.OwnedModel{
			TenantID:  user.TenantID,
			CreatedBy: user.UserID,
			UpdatedBy: user.UserID,
		},
		ProductOwner:    owner,
		ProductName:     req.ProductName,
		ProductCode:     req.ProductCode,
		Category:        req.Category,
		UnitPrice:       req.UnitPrice,
		QuantityInStock: req.QuantityInStock,
		Active:          true,
		Description:     req.Description,
	}

	if err := s.CreateForUser(product, user); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product the user may access
func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, user rbac.User) (*models.Product, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	product, err := s.GetByIDForUser(id, user)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.ErrProductNotFound
	}

	if req.ProductOwner != nil {
		product.ProductOwner = *req.ProductOwner
	}
	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}
	if req.ProductCode != nil {
		product.ProductCode = *req.ProductCode
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.QuantityInStock != nil {
		product.QuantityInStock = *req.QuantityInStock
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	product.UpdatedBy = user.UserID

	if err := s.SaveForUser(product, user); err != nil {
		return nil, err
	}
	return product, nil
}
