package routes

import (
	"test-manager-backend/internal/api/handlers"
	"test-manager-backend/internal/api/middleware"
	"test-manager-backend/internal/config"
	"test-manager-backend/internal/repository"
	"test-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	services := service.NewServices(repository.NewRepositories(db), service.NewValidator())
	return NewRouter(db, cfg, services)
}

// NewRouter mounts the API on top of already built services
func NewRouter(db *gorm.DB, cfg *config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// RequestID runs first so the logger and recovery see the id
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	projectHandler := handlers.NewProjectHandler(services.Project)
	componentHandler := handlers.NewComponentHandler(services.Component)
	testCaseHandler := handlers.NewTestCaseHandler(services.TestCase)
	userHandler := handlers.NewUserHandler(services.User)
	userRoleHandler := handlers.NewUserRoleHandler(services.UserRole)
	testStatusHandler := handlers.NewTestStatusHandler(services.TestStatus)
	testReportHandler := handlers.NewTestReportHandler(services.TestReport)
	testHistoryHandler := handlers.NewTestHistoryHandler(services.TestHistory)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject) // ?cascade=true removes dependents
			projects.GET("/:id/components", componentHandler.GetComponentsByProject)
		}

		// Component routes
		components := v1.Group("/components")
		{
			components.GET("", componentHandler.ListComponents)
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PUT("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.GET("/:id/test-cases", testCaseHandler.GetTestCasesByComponent)
		}

		// Test case routes
		testCases := v1.Group("/test-cases")
		{
			testCases.GET("", testCaseHandler.ListTestCases)
			testCases.POST("", testCaseHandler.CreateTestCase)
			testCases.GET("/:id", testCaseHandler.GetTestCase)
			testCases.PUT("/:id", testCaseHandler.UpdateTestCase)
			testCases.DELETE("/:id", testCaseHandler.DeleteTestCase)
			testCases.GET("/:id/test-reports", testReportHandler.GetReportsByTestCase)
			testCases.GET("/:id/test-history", testHistoryHandler.GetHistoryByTestCase)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/test-cases", testCaseHandler.GetTestCasesByUser)
			users.GET("/:id/test-history", testHistoryHandler.GetHistoryByUser)
		}

		// User role routes
		userRoles := v1.Group("/user-roles")
		{
			userRoles.GET("", userRoleHandler.ListUserRoles)
			userRoles.POST("", userRoleHandler.CreateUserRole)
			userRoles.GET("/:id", userRoleHandler.GetUserRole)
			userRoles.PUT("/:id", userRoleHandler.UpdateUserRole)
			userRoles.DELETE("/:id", userRoleHandler.DeleteUserRole)
			userRoles.GET("/:id/users", userHandler.GetUsersByRole)
		}

		// Test status routes
		testStatuses := v1.Group("/test-statuses")
		{
			testStatuses.GET("", testStatusHandler.ListTestStatuses)
			testStatuses.POST("", testStatusHandler.CreateTestStatus)
			testStatuses.GET("/:id", testStatusHandler.GetTestStatus)
			testStatuses.PUT("/:id", testStatusHandler.UpdateTestStatus)
			testStatuses.DELETE("/:id", testStatusHandler.DeleteTestStatus)
			testStatuses.GET("/:id/test-cases", testCaseHandler.GetTestCasesByStatus)
		}

		// Test report routes
		testReports := v1.Group("/test-reports")
		{
			testReports.GET("", testReportHandler.ListTestReports)
			testReports.POST("", testReportHandler.CreateTestReport)
			testReports.GET("/:id", testReportHandler.GetTestReport)
			testReports.PUT("/:id", testReportHandler.UpdateTestReport)
			testReports.DELETE("/:id", testReportHandler.DeleteTestReport)
		}

		// Test history routes
		testHistory := v1.Group("/test-history")
		{
			testHistory.GET("", testHistoryHandler.ListTestHistory)
			testHistory.POST("", testHistoryHandler.CreateTestHistory)
			testHistory.GET("/:id", testHistoryHandler.GetTestHistory)
			testHistory.PUT("/:id", testHistoryHandler.UpdateTestHistory)
			testHistory.DELETE("/:id", testHistoryHandler.DeleteTestHistory)
		}
	}

	return router
}
