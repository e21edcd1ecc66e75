package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crudkit/internal/http/middleware"
)

// SystemController serves liveness and database checks.
type SystemController struct {
	DB *sql.DB
}

func (ctl *SystemController) Mount(g *gin.RouterGroup) {
	g.GET("/health", ctl.Health)
	g.GET("/db-check", middleware.RequireRoles("admin"), ctl.DBCheck)
}

func (ctl *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ctl *SystemController) DBCheck(c *gin.Context) {
	if ctl.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctl.DB.PingContext(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database ping failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK"})
}
