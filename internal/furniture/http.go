package furniture

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/home-design-app/home-design-backend/internal/uploads"
)

// Catalog is the subset of Repo the handlers use.
type Catalog interface {
	Create(ctx context.Context, in CreateAssetInput) (*Asset, error)
	ListDefaults(ctx context.Context) ([]Asset, error)
}

// FileStore saves uploaded files into the model and thumbnail buckets.
type FileStore interface {
	SaveModel(fh *multipart.FileHeader) (string, error)
	SaveThumbnail(fh *multipart.FileHeader) (string, error)
}

type Handler struct {
	repo  Catalog
	files FileStore
}

func Register(rg *gin.RouterGroup, repo Catalog, files FileStore) {
	h := &Handler{repo: repo, files: files}

	rg.GET("", h.list)
	rg.POST("/upload", h.upload)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.ListDefaults(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dicts := make([]Dict, 0, len(items))
	for i := range items {
		dicts = append(dicts, items[i].Dict())
	}
	c.JSON(http.StatusOK, dicts)
}

func (h *Handler) upload(c *gin.Context) {
	// Nil when the part is absent; SaveModel rejects that case.
	modelFile, _ := c.FormFile("modelFile")

	modelName, err := h.files.SaveModel(modelFile)
	if err != nil {
		if errors.Is(err, uploads.ErrInvalidFile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// A bad thumbnail is dropped, not rejected: the model is already worth
	// keeping, the thumbnail is cosmetic.
	thumbnailFile, _ := c.FormFile("thumbnailFile")
	thumbnailName, err := h.files.SaveThumbnail(thumbnailFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.repo.Create(c.Request.Context(), CreateAssetInput{
		Name:              c.DefaultPostForm("name", "New Model"),
		Description:       c.PostForm("description"),
		Category:          c.DefaultPostForm("category", "Custom"),
		ModelFileName:     modelName,
		ThumbnailFileName: thumbnailName,
		IsDefault:         false,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Model uploaded successfully",
		"model":   asset.Dict(),
	})
}
