package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-cost-service/internal/handler/api"
	"travel-cost-service/internal/handler/middleware"
	"travel-cost-service/internal/pkg/config"
)

func NewRouter(engine *gin.Engine, cfg config.Config, travelHandler *api.TravelHandler) {
	setupMiddleware(engine, cfg.CORS, cfg.Log)

	engine.GET("/", statusInfo)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/calculate", travelHandler.Calculate)
	engine.GET("/records", travelHandler.Records)
	engine.GET("/records/:id", travelHandler.Record)
}

// NewFuelRouter wires the standalone fuel cost service, which mirrors the
// travel service's middleware stack but has no database-backed routes.
func NewFuelRouter(engine *gin.Engine, cfg config.FuelConfig, fuelHandler *api.FuelHandler) {
	setupMiddleware(engine, cfg.CORS, cfg.Log)

	engine.GET("/", statusInfo)
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/calculate", fuelHandler.Calculate)
	}
}

func setupMiddleware(engine *gin.Engine, corsCfg config.CORSConfig, logCfg config.LogConfig) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(corsCfg))
	engine.Use(middleware.LoggingMiddleware(logCfg))
	engine.Use(middleware.ErrorHandler())
}

// @Summary Service status
// @Description Report that the service is up
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func statusInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"message": "Travel Cost Calculator API is running",
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
