package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Store is the subset of Repo the handlers use.
type Store interface {
	Create(ctx context.Context, in ProjectFields) (int64, error)
	Get(ctx context.Context, id int64) (*Project, error)
	Update(ctx context.Context, id int64, in ProjectFields) error
	List(ctx context.Context) ([]Summary, error)
}

type Handler struct {
	repo   Store
	assets AssetFinder
}

func Register(rg *gin.RouterGroup, repo Store, assets AssetFinder) {
	h := &Handler{repo: repo, assets: assets}

	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.GET("/:id/export_blender_data", h.exportBlenderData)
}

type projectBody struct {
	Name                *string         `json:"name"`
	RoomData            json.RawMessage `json:"room_data"`
	PlacedFurnitureData json.RawMessage `json:"placed_furniture_data"`
}

func (b projectBody) fields() ProjectFields {
	return ProjectFields{
		Name:                b.Name,
		RoomData:            b.RoomData,
		PlacedFurnitureData: b.PlacedFurnitureData,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req projectBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	id, err := h.repo.Create(c.Request.Context(), req.fields())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created", "project_id": id})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req projectBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, req.fields()); err != nil {
		respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) exportBlenderData(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	doc, err := BuildExport(c.Request.Context(), p, h.assets)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// projectID parses the :id path segment. A non-numeric id is a 404, the
// same as an unknown one: the path addresses no project.
func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return 0, false
	}
	return id, true
}

func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
