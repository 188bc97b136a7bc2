package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"crm-backend/internal/config"
	"crm-backend/internal/database"
	"crm-backend/internal/database/models"
	"crm-backend/internal/rbac"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	UserID      string `yaml:"user_id"`
	Email       string `yaml:"email"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Role        string `yaml:"role"`
	TenantID    string `yaml:"tenant_id"`
	ReportingTo string `yaml:"reporting_to,omitempty"`
}

type LeadData struct {
	TenantID   string  `yaml:"tenant_id"`
	LeadOwner  string  `yaml:"lead_owner"`
	FirstName  string  `yaml:"first_name"`
	LastName   string  `yaml:"last_name"`
	Email      string  `yaml:"email,omitempty"`
	Company    string  `yaml:"company,omitempty"`
	LeadSource string  `yaml:"lead_source,omitempty"`
	Revenue    float64 `yaml:"annual_revenue,omitempty"`
}

type ContactData struct {
	TenantID     string `yaml:"tenant_id"`
	ContactOwner string `yaml:"contact_owner"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Email        string `yaml:"email,omitempty"`
	AccountName  string `yaml:"account_name,omitempty"`
}

type ProductData struct {
	TenantID     string  `yaml:"tenant_id"`
	ProductOwner string  `yaml:"product_owner"`
	ProductName  string  `yaml:"product_name"`
	ProductCode  string  `yaml:"product_code"`
	Category     string  `yaml:"category,omitempty"`
	UnitPrice    float64 `yaml:"unit_price,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type LeadsFile struct {
	Leads []LeadData `yaml:"leads"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

type ProductsFile struct {
	Products []ProductData `yaml:"products"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	leads, err := loadLeads(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	contacts, err := loadContacts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	products, err := loadProducts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	// Create users first so reporting chains and owners resolve
	userCreated := 0
	for _, userData := range users {
		created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.UserID, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	leadCreated := 0
	for _, leadData := range leads {
		created, err := createLead(db, leadData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create lead %s %s: %v", leadData.FirstName, leadData.LastName, err)
			continue
		}
		if created {
			leadCreated++
		}
	}
	log.Printf("📋 Leads: %d created, %d total", leadCreated, len(leads))

	contactCreated := 0
	for _, contactData := range contacts {
		created, err := createContact(db, contactData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create contact %s %s: %v", contactData.FirstName, contactData.LastName, err)
			continue
		}
		if created {
			contactCreated++
		}
	}
	log.Printf("📋 Contacts: %d created, %d total", contactCreated, len(contacts))

	productCreated := 0
	for _, productData := range products {
		created, err := createProduct(db, productData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create product %s: %v", productData.ProductCode, err)
			continue
		}
		if created {
			productCreated++
		}
	}
	log.Printf("📋 Products: %d created, %d total", productCreated, len(products))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadLeads(dataDir string) ([]LeadData, error) {
	var allLeads []LeadData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "leads") {
			var file LeadsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLeads = append(allLeads, file.Leads...)
		}
		return nil
	})

	return allLeads, err
}

func loadContacts(dataDir string) ([]ContactData, error) {
	var allContacts []ContactData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "contacts") {
			var file ContactsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allContacts = append(allContacts, file.Contacts...)
		}
		return nil
	})

	return allContacts, err
}

func loadProducts(dataDir string) ([]ProductData, error) {
	var allProducts []ProductData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "products") {
			var file ProductsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProducts = append(allProducts, file.Products...)
		}
		return nil
	})

	return allProducts, err
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	var user models.User
	if err := db.Where("user_id = ?", userData.UserID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var reportingTo *string
			if userData.ReportingTo != "" {
				reportingTo = &userData.ReportingTo
			}

			role := rbac.NormalizeRole(userData.Role)
			if role == rbac.RoleUnknown {
				return false, fmt.Errorf("unknown role %q", userData.Role)
			}

			user = models.User{
				UserID:      userData.UserID,
				Email:       userData.Email,
				FirstName:   userData.FirstName,
				LastName:    userData.LastName,
				Role:        string(role),
				TenantID:    userData.TenantID,
				ReportingTo: reportingTo,
			}

			if err := db.Create(&user).Error; err != nil {
				return false, fmt.Errorf("failed to create user: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	return false, nil
}

func createLead(db *gorm.DB, leadData LeadData) (bool, error) {
	var lead models.Lead
	err := db.Where("tenant_id = ? AND email = ? AND last_name = ?", leadData.TenantID, leadData.Email, leadData.LastName).First(&lead).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			lead = models.Lead{
				OwnedModel: models.OwnedModel{
					TenantID:  leadData.TenantID,
					CreatedBy: leadData.LeadOwner,
					UpdatedBy: leadData.LeadOwner,
				},
				LeadOwner:     leadData.LeadOwner,
				FirstName:     leadData.FirstName,
				LastName:      leadData.LastName,
				Email:         leadData.Email,
				Company:       leadData.Company,
				LeadSource:    leadData.LeadSource,
				LeadStatus:    models.LeadStatusNew,
				AnnualRevenue: leadData.Revenue,
			}

			if err := db.Create(&lead).Error; err != nil {
				return false, fmt.Errorf("failed to create lead: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query lead: %w", err)
	}

	return false, nil
}

func createContact(db *gorm.DB, contactData ContactData) (bool, error) {
	var contact models.Contact
	err := db.Where("tenant_id = ? AND email = ? AND last_name = ?", contactData.TenantID, contactData.Email, contactData.LastName).First(&contact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			contact = models.Contact{
				OwnedModel: models.OwnedModel{
					TenantID:  contactData.TenantID,
					CreatedBy: contactData.ContactOwner,
					UpdatedBy: contactData.ContactOwner,
				},
				ContactOwner: contactData.ContactOwner,
				FirstName:    contactData.FirstName,
				LastName:     contactData.LastName,
				Email:        contactData.Email,
				AccountName:  contactData.AccountName,
			}

			if err := db.Create(&contact).Error; err != nil {
				return false, fmt.Errorf("failed to create contact: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query contact: %w", err)
	}

	return false, nil
}

func createProduct(db *gorm.DB, productData ProductData) (bool, error) {
	var product models.Product
	err := db.Where("tenant_id = ? AND product_code = ?", productData.TenantID, productData.ProductCode).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			product = models.Product{
				OwnedModel: models.OwnedModel{
					TenantID:  productData.TenantID,
					CreatedBy: productData.ProductOwner,
					UpdatedBy: productData.ProductOwner,
				},
				ProductOwner: productData.ProductOwner,
				ProductName:  productData.ProductName,
				ProductCode:  productData.ProductCode,
				Category:     productData.Category,
				UnitPrice:    productData.UnitPrice,
			}

			if err := db.Create(&product).Error; err != nil {
				return false, fmt.Errorf("failed to create product: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query product: %w", err)
	}

	return false, nil
}
