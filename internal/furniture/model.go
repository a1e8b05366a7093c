package furniture

import (
	"time"

	"github.com/home-design-app/home-design-backend/internal/uploads"
)

// Asset is a catalog entry for a placeable 3D furniture model.
// Only filenames are persisted; public URLs are derived on the way out.
type Asset struct {
	ID                int64
	Name              string
	Description       string
	ModelFileName     string
	ThumbnailFileName string
	Category          string
	IsDefault         bool
	UploadedByUserID  *int64
	CreatedAt         time.Time
}

// Dict is the wire representation of an Asset.
type Dict struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ModelURL     string  `json:"modelUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Category     string  `json:"category"`
	IsDefault    bool    `json:"is_default"`
}

// Dict projects the asset to its wire form. ThumbnailURL is null when the
// asset has no thumbnail file.
func (a *Asset) Dict() Dict {
	d := Dict{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		ModelURL:    uploads.ModelURL(a.ModelFileName),
		Category:    a.Category,
		IsDefault:   a.IsDefault,
	}
	if a.ThumbnailFileName != "" {
		url := uploads.ThumbnailURL(a.ThumbnailFileName)
		d.ThumbnailURL = &url
	}
	return d
}
