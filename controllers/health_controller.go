package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports liveness and database connectivity
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check handles GET /api/health
func (hc *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Groomy API is running",
	})
}

// DatabaseStatus handles GET /api/database/status
func (hc *HealthController) DatabaseStatus(c *gin.Context) {
	if hc.db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Database is not connected",
		})
		return
	}

	sqlDB, err := hc.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get database instance",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Database connection failed",
		})
		return
	}

	tables, err := hc.db.Migrator().GetTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to query tables",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
