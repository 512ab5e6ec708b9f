package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scene is a lifestyle image with clickable hotspots, each pointing at one
// product handle.
type Scene struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	Hotspots  []Hotspot `json:"hotspots"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Hotspot is a clickable region on a scene image. Coordinates are percentages
// of the image dimensions so the frontend can scale freely.
type Hotspot struct {
	ID            uuid.UUID `json:"id"`
	SceneID       uuid.UUID `json:"scene_id"`
	ProductHandle string    `json:"product_handle"`
	Label         string    `json:"label,omitempty"`
	XPercent      float64   `json:"x_percent"`
	YPercent      float64   `json:"y_percent"`
	Position      int       `json:"position"`
}
