package handlers

import (
	"net/http"

	"osm-hvac-report/internal/api/middleware"
	"osm-hvac-report/internal/data"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(cache *data.ModelCache) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	reports := NewReportHandler(cache)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/reports", reports.ListReports)
		api.POST("/reports/:kind", reports.BuildReport)
	}
	return router
}
