package routes

import (
	"crm-backend/internal/api/handlers"
	"crm-backend/internal/api/middleware"
	"crm-backend/internal/auth"
	"crm-backend/internal/config"
	"crm-backend/internal/rbac"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	contactRepo := repository.NewContactRepository(db)
	dealRepo := repository.NewDealRepository(db)
	productRepo := repository.NewProductRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	subsidiaryRepo := repository.NewSubsidiaryRepository(db)
	dealerRepo := repository.NewDealerRepository(db)

	// Build the policy table, applying file overrides when configured.
	// A file that exists but cannot be loaded stops startup; a typo in
	// an override must never silently fall back to wider defaults.
	policy, err := rbac.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy overrides from %s: %w", cfg.PolicyFile, err)
	}
	compiler := rbac.NewCompiler(userRepo)

	// Initialize services
	userService := service.NewUserService(userRepo, policy, validator)
	leadService := service.NewLeadService(leadRepo, policy, compiler, validator)
	contactService := service.NewContactService(contactRepo, policy, compiler, validator)
	dealService := service.NewDealService(dealRepo, policy, compiler, validator)
	productService := service.NewProductService(productRepo, policy, compiler, validator)
	quoteService := service.NewQuoteService(quoteRepo, policy, compiler, validator)
	taskService := service.NewTaskService(taskRepo, policy, compiler, validator)
	subsidiaryService := service.NewSubsidiaryService(subsidiaryRepo, policy, compiler, validator)
	dealerService := service.NewDealerService(dealerRepo, policy, compiler, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	leadHandler := handlers.NewLeadHandler(leadService)
	contactHandler := handlers.NewContactHandler(contactService)
	dealHandler := handlers.NewDealHandler(dealService)
	productHandler := handlers.NewProductHandler(productService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	taskHandler := handlers.NewTaskHandler(taskService)
	subsidiaryHandler := handlers.NewSubsidiaryHandler(subsidiaryService)
	dealerHandler := handlers.NewDealerHandler(dealerService)

	// Health and observability routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes, all behind JWT authentication
	api := router.Group("/api/v1")
	api.Use(auth.Middleware(cfg.JWTSecret))
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:userId", userHandler.GetUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:userId", userHandler.UpdateUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
		}

		leads := api.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.GET("/search", leadHandler.SearchLeads)
			leads.GET("/owner/:ownerId", leadHandler.ListLeadsByOwner)
			leads.GET("/:id", leadHandler.GetLead)
			leads.POST("", leadHandler.CreateLead)
			leads.PUT("/:id", leadHandler.UpdateLead)
			leads.DELETE("/:id", leadHandler.DeleteLead)
			leads.POST("/:id/restore", leadHandler.RestoreLead)
			leads.DELETE("/:id/purge", leadHandler.PurgeLead)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.GET("/search", contactHandler.SearchContacts)
			contacts.GET("/owner/:ownerId", contactHandler.ListContactsByOwner)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.POST("", contactHandler.CreateContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.DELETE("/:id", contactHandler.DeleteContact)
			contacts.POST("/:id/restore", contactHandler.RestoreContact)
			contacts.DELETE("/:id/purge", contactHandler.PurgeContact)
		}

		deals := api.Group("/deals")
		{
			deals.GET("", dealHandler.ListDeals)
			deals.GET("/search", dealHandler.SearchDeals)
			deals.GET("/owner/:ownerId", dealHandler.ListDealsByOwner)
			deals.GET("/:id", dealHandler.GetDeal)
			deals.POST("", dealHandler.CreateDeal)
			deals.PUT("/:id", dealHandler.UpdateDeal)
			deals.DELETE("/:id", dealHandler.DeleteDeal)
			deals.POST("/:id/restore", dealHandler.RestoreDeal)
			deals.DELETE("/:id/purge", dealHandler.PurgeDeal)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/owner/:ownerId", productHandler.ListProductsByOwner)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/restore", productHandler.RestoreProduct)
			products.DELETE("/:id/purge", productHandler.PurgeProduct)
		}

		quotes := api.Group("/quotes")
		{
			quotes.GET("", quoteHandler.ListQuotes)
			quotes.GET("/search", quoteHandler.SearchQuotes)
			quotes.GET("/owner/:ownerId", quoteHandler.ListQuotesByOwner)
			quotes.GET("/:id", quoteHandler.GetQuote)
			quotes.POST("", quoteHandler.CreateQuote)
			quotes.PUT("/:id", quoteHandler.UpdateQuote)
			quotes.DELETE("/:id", quoteHandler.DeleteQuote)
			quotes.POST("/:id/restore", quoteHandler.RestoreQuote)
			quotes.DELETE("/:id/purge", quoteHandler.PurgeQuote)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/search", taskHandler.SearchTasks)
			tasks.GET("/owner/:ownerId", taskHandler.ListTasksByOwner)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/restore", taskHandler.RestoreTask)
			tasks.DELETE("/:id/purge", taskHandler.PurgeTask)
		}

		subsidiaries := api.Group("/subsidiaries")
		{
			subsidiaries.GET("", subsidiaryHandler.ListSubsidiaries)
			subsidiaries.GET("/search", subsidiaryHandler.SearchSubsidiaries)
			subsidiaries.GET("/owner/:ownerId", subsidiaryHandler.ListSubsidiariesByOwner)
			subsidiaries.GET("/:id", subsidiaryHandler.GetSubsidiary)
			subsidiaries.POST("", subsidiaryHandler.CreateSubsidiary)
			subsidiaries.PUT("/:id", subsidiaryHandler.UpdateSubsidiary)
			subsidiaries.DELETE("/:id", subsidiaryHandler.DeleteSubsidiary)
			subsidiaries.POST("/:id/restore", subsidiaryHandler.RestoreSubsidiary)
			subsidiaries.DELETE("/:id/purge", subsidiaryHandler.PurgeSubsidiary)
		}

		dealers := api.Group("/dealers")
		{
			dealers.GET("", dealerHandler.ListDealers)
			dealers.GET("/search", dealerHandler.SearchDealers)
			dealers.GET("/owner/:ownerId", dealerHandler.ListDealersByOwner)
			dealers.GET("/:id", dealerHandler.GetDealer)
			dealers.POST("", dealerHandler.CreateDealer)
			dealers.PUT("/:id", dealerHandler.UpdateDealer)
			dealers.DELETE("/:id", dealerHandler.DeleteDealer)
			dealers.POST("/:id/restore", dealerHandler.RestoreDealer)
			dealers.DELETE("/:id/purge", dealerHandler.PurgeDealer)
		}
	}

	return router, nil
}
