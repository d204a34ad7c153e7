/*
Copyright © 2025 jagadeeshwarid
*/
package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jagadeeshwarid/TaskTrackerPro/config"
	"github.com/jagadeeshwarid/TaskTrackerPro/database"
	"github.com/jagadeeshwarid/TaskTrackerPro/handler"
	"github.com/jagadeeshwarid/TaskTrackerPro/middleware"
	"github.com/jagadeeshwarid/TaskTrackerPro/repository"
	"github.com/jagadeeshwarid/TaskTrackerPro/service"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Opens (or initializes) the CSV data directory and serves the employee management API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		store, err := database.NewStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}

		router := NewRouter(store)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// NewRouter wires store -> repositories -> services -> handlers and
// returns the configured gin engine. The API test drives this same
// router.
func NewRouter(store *database.Store) *gin.Engine {
	// init repos
	userRepo := repository.NewUserRepo(store.Users)
	taskRepo := repository.NewTaskRepo(store.Tasks)
	leaveRepo := repository.NewLeaveRepo(store.Leaves)
	timesheetRepo := repository.NewTimesheetRepo(store.Timesheets)

	// init services
	authService := service.NewAuthService(userRepo)
	taskService := service.NewTaskService(taskRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	timesheetService := service.NewTimesheetService(timesheetRepo, taskRepo)
	reportService := service.NewReportService(taskRepo, leaveRepo, timesheetRepo)

	// Initialize handlers
	corsHandler := handler.NewCorsHandler()
	loginHandler := handler.NewLoginHandler(authService)
	userMngHandler := handler.NewUserManageHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	timesheetHandler := handler.NewTimesheetHandler(timesheetService)
	dashboardHandler := handler.NewDashboardHandler(reportService)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(corsHandler.CorsMiddleware)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	apiV1.POST("/login", loginHandler.HandleLogin)
	apiV1.POST("/register", loginHandler.HandleRegister)

	// Protected routes - any authenticated principal
	userRoutes := apiV1.Group("/")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/tasks", taskHandler.HandleList)
		userRoutes.POST("/tasks", taskHandler.HandleCreate)
		userRoutes.PUT("/tasks/:id/status", taskHandler.HandleUpdateStatus)

		userRoutes.GET("/leaves", leaveHandler.HandleListMine)
		userRoutes.POST("/leaves", leaveHandler.HandleSubmit)
		userRoutes.DELETE("/leaves/:id", leaveHandler.HandleCancel)

		userRoutes.POST("/timesheet/login", timesheetHandler.HandleLogin)
		userRoutes.PUT("/timesheet/progress", timesheetHandler.HandleUpdateProgress)
		userRoutes.POST("/timesheet/logout", timesheetHandler.HandleLogout)
		userRoutes.GET("/timesheet/history", timesheetHandler.HandleHistory)
		userRoutes.GET("/timesheet/tasks", timesheetHandler.HandleAssignedTasks)

		userRoutes.GET("/dashboard", dashboardHandler.HandleEmployeeOverview)
	}

	// Admin routes - require the admin role
	adminRoutes := router.Group("/admin/api/v1")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.AdminAuthMiddleware())
	{
		adminRoutes.GET("/tasks/pending", taskHandler.HandleListPendingApproval)
		adminRoutes.PUT("/tasks/:id/approve", taskHandler.HandleApprove)
		adminRoutes.DELETE("/tasks/:id", taskHandler.HandleDelete)

		adminRoutes.GET("/leaves/pending", leaveHandler.HandleListPending)
		adminRoutes.PUT("/leaves/:id/decide", leaveHandler.HandleDecide)

		adminRoutes.POST("/users/create", userMngHandler.HandleCreateUser)
		adminRoutes.GET("/users", userMngHandler.HandleListUsers)
		adminRoutes.GET("/users/employees", userMngHandler.HandleListEmployees)
		adminRoutes.POST("/users/reset-password", userMngHandler.HandleResetPassword)

		adminRoutes.GET("/dashboard", dashboardHandler.HandleAdminOverview)
	}

	return router
}

func init() {
	rootCmd.AddCommand(startCmd)
}
