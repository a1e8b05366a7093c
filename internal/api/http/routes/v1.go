package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/home-design-app/home-design-backend/internal/furniture"
	"github.com/home-design-app/home-design-backend/internal/projects"
	"github.com/home-design-app/home-design-backend/internal/uploads"
)

type V1Deps struct {
	DB    *pgxpool.Pool
	Files *uploads.Store
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	projectRepo := projects.NewRepo(dep.DB)
	furnitureRepo := furniture.NewRepo(dep.DB)

	projects.Register(api.Group("/projects"), projectRepo, furnitureRepo)
	furniture.Register(api.Group("/furniture"), furnitureRepo, dep.Files)
}
