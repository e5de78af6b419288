package handler

import (
	"context"
	"fmt"
	"net/http"

	"hmps-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *store.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db   Pinger
	port int
}

func NewSystemHandler(db Pinger, port int) *SystemHandler {
	return &SystemHandler{db: db, port: port}
}

// GET /
func (h *SystemHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, fmt.Sprintf("API Gallery & Activities - Berjalan di Port %d", h.port))
}

// GET /healthz
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		logger.Warn("health.db_unreachable", "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
