package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func healthRouter(t *testing.T, db DBPinger, modelsDir, thumbnailsDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler("home-design-backend", "1.0.0", db, modelsDir, thumbnailsDir).RegisterRoutes(r)
	return r
}

func bucketDirs(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	models := filepath.Join(root, "models")
	thumbs := filepath.Join(root, "thumbnails")
	require.NoError(t, os.MkdirAll(models, 0o755))
	require.NoError(t, os.MkdirAll(thumbs, 0o755))
	return models, thumbs
}

func getHealth(t *testing.T, r *gin.Engine, path string) (int, HealthResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestHealthCheck(t *testing.T) {
	models, thumbs := bucketDirs(t)
	r := healthRouter(t, stubPinger{}, models, thumbs)

	code, resp := getHealth(t, r, "/health")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "home-design-backend", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "up", resp.DB)
	assert.Equal(t, "ready", resp.Buckets["models"])
	assert.Equal(t, "ready", resp.Buckets["thumbnails"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHealthCheckDBDown(t *testing.T) {
	models, thumbs := bucketDirs(t)
	r := healthRouter(t, stubPinger{err: errors.New("connection refused")}, models, thumbs)

	code, resp := getHealth(t, r, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "down", resp.DB)
}

func TestHealthCheckMissingBucket(t *testing.T) {
	models, _ := bucketDirs(t)
	r := healthRouter(t, stubPinger{}, models, filepath.Join(t.TempDir(), "nope"))

	_, resp := getHealth(t, r, "/health")
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "ready", resp.Buckets["models"])
	assert.Equal(t, "missing", resp.Buckets["thumbnails"])
}

func TestHealthzAlias(t *testing.T) {
	models, thumbs := bucketDirs(t)
	r := healthRouter(t, stubPinger{}, models, thumbs)

	code, resp := getHealth(t, r, "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
}
