package main

import (
	"log"
	"time"

	"cutting_report/internal/config"
	"cutting_report/internal/database"
	"cutting_report/internal/handlers"
	"cutting_report/internal/migrations"
	"cutting_report/internal/redis"
	"cutting_report/internal/repository"
	"cutting_report/internal/services"
	"cutting_report/pkg/sheets"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize workbook client
	sheetsClient := sheets.NewClient(time.Duration(cfg.FetchTimeout) * time.Second)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Initialize services
	dataService := services.NewDataService(sheetsClient, redisClient, time.Duration(cfg.CacheTTL)*time.Second)
	reportService := services.NewReportService(dataService)
	summaryService := services.NewSummaryService(dataService)
	authService := services.NewAuthService(userRepo, redisClient, time.Duration(cfg.SessionTimeout)*time.Second)

	if err := authService.EnsureAdminUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(configRepo, reportService, summaryService)
	adminHandler := handlers.NewAdminHandler(authService, configRepo, dataService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/units", dashboardHandler.GetUnits)
		api.GET("/dashboard/:unit", dashboardHandler.GetDashboard)
		api.GET("/dashboard/:unit/exceptions/:kind", dashboardHandler.GetExceptionDetail)
		api.GET("/summary", dashboardHandler.GetSummary)

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)
			admin.POST("/logout", adminHandler.Logout)

			protected := admin.Group("")
			protected.Use(adminHandler.RequireAuth)
			{
				protected.GET("/config", adminHandler.GetConfig)
				protected.PUT("/config", adminHandler.SaveConfig)
			}
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
