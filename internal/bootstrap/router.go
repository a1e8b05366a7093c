package bootstrap

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/home-design-app/home-design-backend/config"
	httpapi "github.com/home-design-app/home-design-backend/internal/api/http"
	"github.com/home-design-app/home-design-backend/internal/api/http/middleware"
	"github.com/home-design-app/home-design-backend/internal/api/http/routes"
	"github.com/home-design-app/home-design-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Files       *uploads.Store
	Storage     config.StorageConfig
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(
		dep.ServiceName, dep.Version, dep.DB,
		dep.Storage.ModelsDir(), dep.Storage.ThumbnailsDir(),
	)
	healthHandler.RegisterRoutes(r)

	// Stored asset URLs are built with these literal prefixes; the mounts
	// must match them exactly.
	r.Static("/static/models", dep.Storage.ModelsDir())
	r.Static("/static/thumbnails", dep.Storage.ThumbnailsDir())

	routes.RegisterV1(r, routes.V1Deps{DB: dep.DB, Files: dep.Files})

	r.NoRoute(spaFallback(dep.Storage.FrontendDist))

	return r
}

// spaFallback serves the built client bundle: a real file when the path
// names one, index.html for everything else so client-side routing works.
func spaFallback(dist string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		reqPath := filepath.Clean("/" + c.Request.URL.Path)
		if reqPath != "/" {
			full := filepath.Join(dist, reqPath)
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}

		index := filepath.Join(dist, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.String(http.StatusNotFound, "Frontend not found. Build the client app and point FRONTEND_DIST at it.")
			return
		}
		c.File(index)
	}
}
