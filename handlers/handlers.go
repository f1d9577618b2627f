package handlers

import (
	"log"
	"net/http"
	"runtime"
	"time"
	"todolist/database"
	"todolist/models"
	"todolist/service"
	"todolist/version"

	"github.com/gin-gonic/gin"
)

// ListItemsV2 returns every item in the V2 envelope
func ListItemsV2(c *gin.Context) {
	items, err := service.GlobalServices.Items.List(c.Request.Context())
	if err != nil {
		log.Printf("[%s] %v", requestID(c), err)
		errV2(c, http.StatusInternalServerError, CodeInternal, "Failed to list items", err.Error())
		return
	}
	okV2(c, items)
}

// CreateItemV2 stores a JSON {"text": ...} payload as a new item
func CreateItemV2(c *gin.Context) {
	var req models.ItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		errV2(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request", err.Error())
		return
	}

	item, err := service.GlobalServices.Items.Create(c.Request.Context(), req)
	if err != nil {
		log.Printf("[%s] %v", requestID(c), err)
		errV2(c, http.StatusInternalServerError, CodeInternal, "Failed to create item", err.Error())
		return
	}
	okV2(c, gin.H{"id": item.ID})
}

// HealthCheck health endpoint
func HealthCheck(c *gin.Context) {
	dbHealthy := database.Up(c.Request.Context())

	health := gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().Unix(),
		"db_healthy": dbHealthy,
		"version":    version.GetFullVersion(),
	}

	if !dbHealthy {
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	if total, err := service.GlobalServices.Items.Count(c.Request.Context()); err == nil {
		health["items"] = total
	}

	c.JSON(http.StatusOK, health)
}

// GetMetrics gathers database and runtime metrics
func GetMetrics(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	dialect := database.ActiveDialect()
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().Unix(),
		"database": gin.H{
			"up":      database.Up(c.Request.Context()),
			"dialect": dialect,
			"errors":  database.ErrorCounts(dialect),
		},
		"system": gin.H{
			"goroutines":   runtime.NumGoroutine(),
			"memory_alloc": mem.Alloc,
			"memory_total": mem.TotalAlloc,
			"memory_sys":   mem.Sys,
			"gc_runs":      mem.NumGC,
		},
	})
}
