package http

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// DBPinger is satisfied by *pgxpool.Pool.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the two dependencies this service
// cannot serve without: the project database and the upload buckets.
type HealthHandler struct {
	serviceName string
	version     string
	db          DBPinger
	buckets     map[string]string
}

func NewHealthHandler(serviceName, version string, db DBPinger, modelsDir, thumbnailsDir string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		buckets: map[string]string{
			"models":     modelsDir,
			"thumbnails": thumbnailsDir,
		},
	}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	DB        string            `json:"db"`
	Buckets   map[string]string `json:"buckets"`
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "ok"

	dbStatus := "up"
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()
	if err := h.db.Ping(pingCtx); err != nil {
		dbStatus = "down"
		status = "degraded"
	}

	// A missing bucket means uploads and /static serving are broken even
	// though the process is up.
	buckets := make(map[string]string, len(h.buckets))
	for label, dir := range h.buckets {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			buckets[label] = "missing"
			status = "degraded"
		} else {
			buckets[label] = "ready"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Buckets:   buckets,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
