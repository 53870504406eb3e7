package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"performance-portal-backend/internal/api/handlers"
	"performance-portal-backend/internal/api/middleware"
	"performance-portal-backend/internal/auth"
	"performance-portal-backend/internal/cache"
	"performance-portal-backend/internal/config"
	"performance-portal-backend/internal/repository"
	"performance-portal-backend/internal/service"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, treeCache *cache.TreeCache, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	postRepo := repository.NewPostRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	positionAssignRepo := repository.NewPositionAssignmentRepository(db)
	postAssignRepo := repository.NewPostAssignmentRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, validate)
	employeeService := service.NewEmployeeService(employeeRepo, companyRepo, validate)
	postService := service.NewPostService(postRepo, companyRepo, validate)
	positionService := service.NewPositionService(positionRepo, companyRepo, treeCache, validate)
	assignmentService := service.NewAssignmentService(positionAssignRepo, postAssignRepo, positionRepo, postRepo, employeeRepo, treeCache, validate)
	scoreService := service.NewScoreService(scoreRepo, employeeRepo, positionRepo, treeCache, validate)
	orgTreeService := service.NewOrgTreeService(positionRepo, positionAssignRepo, employeeRepo, scoreRepo, treeCache)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService, employeeRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	postHandler := handlers.NewPostHandler(postService)
	positionHandler := handlers.NewPositionHandler(positionService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	orgTreeHandler := handlers.NewOrgTreeHandler(orgTreeService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	router.POST("/auth/token", authHandler.Token)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		companies := v1.Group("/companies")
		{
			companies.POST("", companyHandler.Create)
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.GetByID)
			companies.PUT("/:id", companyHandler.Update)
			companies.DELETE("/:id", companyHandler.Delete)
			companies.GET("/:id/employees", employeeHandler.ListByCompany)
			companies.GET("/:id/posts", postHandler.ListByCompany)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.Create)
			employees.GET("/:id", employeeHandler.GetByID)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
			employees.GET("/:id/assignments", assignmentHandler.EmployeeHistory)
			employees.GET("/:id/scores", scoreHandler.ListByEmployee)
			employees.GET("/:id/scores/latest", scoreHandler.Latest)
			employees.GET("/:id/reports", orgTreeHandler.Reports)
			employees.GET("/:id/org-tree", authMiddleware.OptionalAuth(), orgTreeHandler.OrgTree)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", postHandler.Create)
			posts.GET("/:id", postHandler.GetByID)
			posts.PUT("/:id", postHandler.Update)
			posts.DELETE("/:id", postHandler.Delete)
		}

		positions := v1.Group("/positions")
		{
			positions.POST("", positionHandler.Create)
			positions.GET("/:id", positionHandler.GetByID)
			positions.PATCH("/:id/title", positionHandler.UpdateTitle)
			positions.PATCH("/:id/parent", positionHandler.UpdateParent)
			positions.DELETE("/:id", positionHandler.Delete)
			positions.GET("/:id/subordinates", orgTreeHandler.Subordinates)
			positions.GET("/:id/holder", assignmentHandler.CurrentHolder)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.POST("/position", assignmentHandler.AssignPosition)
			assignments.PATCH("/position/close", assignmentHandler.ClosePosition)
			assignments.POST("/post", assignmentHandler.AssignPost)
			assignments.PATCH("/post/close", assignmentHandler.ClosePost)
		}

		scores := v1.Group("/scores")
		{
			scores.POST("", authMiddleware.RequireAuth(), scoreHandler.Create)
			scores.PUT("/:id", authMiddleware.RequireAuth(), scoreHandler.Update)
		}
	}

	return router
}
