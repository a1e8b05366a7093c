package projects

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/home-design-app/home-design-backend/internal/furniture"
	"github.com/home-design-app/home-design-backend/internal/uploads"
)

// AssetFinder resolves a furniture asset id against the live catalog.
// Absence is non-fatal for export.
type AssetFinder interface {
	FindByID(ctx context.Context, id int64) (*furniture.Asset, error)
}

// ExportDocument is the JSON handed to an external 3D tool (a Blender
// import script). It is self-contained: every entry carries a fetchable
// model URL.
type ExportDocument struct {
	ProjectName     string                 `json:"project_name"`
	RoomWalls       json.RawMessage        `json:"room_walls"`
	PlacedFurniture []ExportFurnitureEntry `json:"placed_furniture"`
}

type ExportFurnitureEntry struct {
	Name     string          `json:"name"`
	ModelURL string          `json:"model_url"`
	Position json.RawMessage `json:"position"`
	Rotation json.RawMessage `json:"rotation"`
	Scale    json.RawMessage `json:"scale"`
}

// placedItem is the conventional shape of one record inside
// placed_furniture_data. Nothing enforces it at write time.
type placedItem struct {
	ID       *int64          `json:"id"`
	Name     string          `json:"name"`
	ModelURL string          `json:"modelUrl"`
	Position json.RawMessage `json:"position"`
	Rotation json.RawMessage `json:"rotation"`
	Scale    json.RawMessage `json:"scale"`
}

var defaultScale = json.RawMessage("[1, 1, 1]")

// BuildExport assembles the export document for a project. Each placement
// is resolved against the live catalog; when the referenced asset is gone
// the name and model URL embedded at placement time are used instead, so
// export degrades instead of failing.
func BuildExport(ctx context.Context, p *Project, assets AssetFinder) (*ExportDocument, error) {
	doc := &ExportDocument{
		ProjectName:     p.Name,
		RoomWalls:       json.RawMessage("[]"),
		PlacedFurniture: []ExportFurnitureEntry{},
	}

	if jsonPresent(p.RoomData) {
		var room struct {
			Walls json.RawMessage `json:"walls"`
		}
		if err := json.Unmarshal(p.RoomData, &room); err != nil {
			return nil, fmt.Errorf("decode room data: %w", err)
		}
		if jsonPresent(room.Walls) {
			doc.RoomWalls = room.Walls
		}
	}

	if !jsonPresent(p.PlacedFurnitureData) {
		return doc, nil
	}

	var items []placedItem
	if err := json.Unmarshal(p.PlacedFurnitureData, &items); err != nil {
		return nil, fmt.Errorf("decode placed furniture: %w", err)
	}

	for _, it := range items {
		entry := ExportFurnitureEntry{
			Position: it.Position,
			Rotation: it.Rotation,
			Scale:    it.Scale,
		}
		if !jsonPresent(entry.Scale) {
			entry.Scale = defaultScale
		}

		var asset *furniture.Asset
		if it.ID != nil {
			if a, err := assets.FindByID(ctx, *it.ID); err == nil {
				asset = a
			}
		}

		if asset != nil {
			entry.Name = asset.Name
			entry.ModelURL = uploads.ModelURL(asset.ModelFileName)
		} else {
			entry.Name = it.Name
			if entry.Name == "" {
				entry.Name = "Unknown Model"
			}
			entry.ModelURL = it.ModelURL
		}

		doc.PlacedFurniture = append(doc.PlacedFurniture, entry)
	}

	return doc, nil
}

func jsonPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
