package routes

import (
	"netlist-visualizer-backend/internal/api/handlers"
	"netlist-visualizer-backend/internal/api/middleware"
	"netlist-visualizer-backend/internal/auth"
	"netlist-visualizer-backend/internal/config"
	"netlist-visualizer-backend/internal/netlist"
	"netlist-visualizer-backend/internal/repository"
	"netlist-visualizer-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Rule engine configuration; defaults enable every rule
	rules := netlist.DefaultRuleConfig()
	if cfg.RulesConfigPath != "" {
		loaded, err := netlist.LoadRuleConfig(cfg.RulesConfigPath)
		if err != nil {
			logrus.Warnf("Failed to load rule config from %s: %v", cfg.RulesConfigPath, err)
		} else {
			rules = loaded
		}
	}

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(db)

	// Initialize services
	submissionService := service.NewSubmissionService(submissionRepo, rules)
	graphService := service.NewGraphService(submissionRepo, netlist.DefaultColumnLayout())

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	netlistHandler := handlers.NewNetlistHandler(submissionService, graphService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	api.Use(authMiddleware.OptionalAuth())
	{
		api.POST("/netlists", netlistHandler.Upload)
		api.GET("/netlists", netlistHandler.List)
		api.GET("/netlists/:id", netlistHandler.Get)
		api.GET("/netlists/:id/graph", netlistHandler.Graph)
	}

	return router
}
