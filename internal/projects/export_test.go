package projects

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home-design-app/home-design-backend/internal/furniture"
)

type fakeFinder struct {
	assets map[int64]*furniture.Asset
}

func (f *fakeFinder) FindByID(_ context.Context, id int64) (*furniture.Asset, error) {
	if a, ok := f.assets[id]; ok {
		return a, nil
	}
	return nil, furniture.ErrNotFound
}

func TestBuildExportResolvesLiveAssets(t *testing.T) {
	finder := &fakeFinder{assets: map[int64]*furniture.Asset{
		5: {ID: 5, Name: "Catalog Sofa", ModelFileName: "sofa_v2.glb"},
	}}

	p := &Project{
		Name:     "Living Room",
		RoomData: json.RawMessage(`{"walls": [{"x": 1}]}`),
		PlacedFurnitureData: json.RawMessage(`[
			{"id": 5, "name": "Stale Sofa", "modelUrl": "/static/models/sofa_v1.glb",
			 "position": [0, 0, 0], "rotation": [0, 90, 0], "scale": [2, 2, 2]}
		]`),
	}

	doc, err := BuildExport(context.Background(), p, finder)
	require.NoError(t, err)

	assert.Equal(t, "Living Room", doc.ProjectName)
	assert.JSONEq(t, `[{"x": 1}]`, string(doc.RoomWalls))

	require.Len(t, doc.PlacedFurniture, 1)
	entry := doc.PlacedFurniture[0]
	assert.Equal(t, "Catalog Sofa", entry.Name)
	assert.Equal(t, "/static/models/sofa_v2.glb", entry.ModelURL)
	assert.JSONEq(t, `[0, 90, 0]`, string(entry.Rotation))
	assert.JSONEq(t, `[2, 2, 2]`, string(entry.Scale))
}

func TestBuildExportFallsBackForMissingAsset(t *testing.T) {
	finder := &fakeFinder{}

	p := &Project{
		Name: "Hallway",
		PlacedFurnitureData: json.RawMessage(`[
			{"id": 99, "name": "Old Lamp", "modelUrl": "/static/models/lamp.gltf",
			 "position": [1, 0, 1], "rotation": [0, 0, 0]}
		]`),
	}

	doc, err := BuildExport(context.Background(), p, finder)
	require.NoError(t, err)

	require.Len(t, doc.PlacedFurniture, 1)
	entry := doc.PlacedFurniture[0]
	assert.Equal(t, "Old Lamp", entry.Name)
	assert.Equal(t, "/static/models/lamp.gltf", entry.ModelURL)
	assert.JSONEq(t, `[1, 1, 1]`, string(entry.Scale), "scale defaults when absent")
}

func TestBuildExportEmptyProject(t *testing.T) {
	doc, err := BuildExport(context.Background(), &Project{Name: "Blank"}, &fakeFinder{})
	require.NoError(t, err)

	assert.JSONEq(t, `[]`, string(doc.RoomWalls))
	assert.Empty(t, doc.PlacedFurniture)

	// The document must serialize with both collections present.
	body, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_name": "Blank", "room_walls": [], "placed_furniture": []}`, string(body))
}

func TestBuildExportUnnamedFallbackEntry(t *testing.T) {
	p := &Project{
		Name:                "X",
		PlacedFurnitureData: json.RawMessage(`[{"position": [0, 0, 0]}]`),
	}

	doc, err := BuildExport(context.Background(), p, &fakeFinder{})
	require.NoError(t, err)

	require.Len(t, doc.PlacedFurniture, 1)
	assert.Equal(t, "Unknown Model", doc.PlacedFurniture[0].Name)
}

func TestBuildExportBadPlacementData(t *testing.T) {
	p := &Project{
		Name:                "Broken",
		PlacedFurnitureData: json.RawMessage(`{"not": "a list"}`),
	}

	_, err := BuildExport(context.Background(), p, &fakeFinder{})
	assert.Error(t, err)
}
