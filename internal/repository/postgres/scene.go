package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oskarlind/shopthelook/internal/domain"
	"github.com/oskarlind/shopthelook/pkg/database"
	apperrors "github.com/oskarlind/shopthelook/pkg/errors"
)

// SceneRepository implements repository.SceneRepository using PostgreSQL.
type SceneRepository struct {
	db database.DBTX
}

// NewSceneRepository creates a new PostgreSQL-backed scene repository.
func NewSceneRepository(db database.DBTX) *SceneRepository {
	return &SceneRepository{db: db}
}

// GetBySlug retrieves a scene with its hotspots ordered by position.
func (r *SceneRepository) GetBySlug(ctx context.Context, slug string) (*domain.Scene, error) {
	query := `
		SELECT id, slug, title, image_url, created_at, updated_at
		FROM scenes
		WHERE slug = $1`

	var scene domain.Scene
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&scene.ID,
		&scene.Slug,
		&scene.Title,
		&scene.ImageURL,
		&scene.CreatedAt,
		&scene.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("scene", slug)
		}
		return nil, fmt.Errorf("query scene %s: %w", slug, err)
	}

	hotspots, err := r.hotspotsForScene(ctx, &scene)
	if err != nil {
		return nil, err
	}
	scene.Hotspots = hotspots

	return &scene, nil
}

func (r *SceneRepository) hotspotsForScene(ctx context.Context, scene *domain.Scene) ([]domain.Hotspot, error) {
	query := `
		SELECT id, scene_id, product_handle, label, x_percent, y_percent, position
		FROM hotspots
		WHERE scene_id = $1
		ORDER BY position`

	rows, err := r.db.Query(ctx, query, scene.ID)
	if err != nil {
		return nil, fmt.Errorf("query hotspots for scene %s: %w", scene.Slug, err)
	}
	defer rows.Close()

	var hotspots []domain.Hotspot
	for rows.Next() {
		var h domain.Hotspot
		if err := rows.Scan(
			&h.ID,
			&h.SceneID,
			&h.ProductHandle,
			&h.Label,
			&h.XPercent,
			&h.YPercent,
			&h.Position,
		); err != nil {
			return nil, fmt.Errorf("scan hotspot: %w", err)
		}
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotspots: %w", err)
	}

	return hotspots, nil
}

// List returns all scenes without their hotspots, newest first.
func (r *SceneRepository) List(ctx context.Context) ([]domain.Scene, error) {
	query := `
		SELECT id, slug, title, image_url, created_at, updated_at
		FROM scenes
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query scenes: %w", err)
	}
	defer rows.Close()

	var scenes []domain.Scene
	for rows.Next() {
		var s domain.Scene
		if err := rows.Scan(
			&s.ID,
			&s.Slug,
			&s.Title,
			&s.ImageURL,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scene: %w", err)
		}
		scenes = append(scenes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenes: %w", err)
	}

	return scenes, nil
}
