package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler serves liveness and readiness checks.
type Handler struct {
	db      Pinger
	service string
}

// NewHandler creates a health handler backed by the GORM connection pool.
func NewHandler(db *gorm.DB, service string) *Handler {
	var p Pinger
	if sqlDB, err := db.DB(); err == nil {
		p = sqlDB
	}
	return &Handler{db: p, service: service}
}

// RegisterRoutes registers /health and /ready.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health handles GET /health. It always answers 200 while the process is up and
// reports database reachability in the body; /ready is the gate that fails.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service, "database": h.databaseStatus(ctx)})
}

func (h *Handler) databaseStatus(ctx context.Context) string {
	if h.db == nil {
		return "unconfigured"
	}
	if err := h.db.PingContext(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}

// Ready handles GET /ready.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "service": h.service, "database": "unconfigured"})
		return
	}
	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "service": h.service, "database": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "service": h.service, "database": "ok"})
}
