package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgx/v5"

	"github.com/oskarlind/shopthelook/pkg/database"
	apperrors "github.com/oskarlind/shopthelook/pkg/errors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return mock
}

func TestSceneRepository_GetBySlug(t *testing.T) {
	mock := newMock(t)
	repo := NewSceneRepository(mock)

	sceneID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, slug, title, image_url, created_at, updated_at")).
		WithArgs("winter-lounge").
		WillReturnRows(pgxmock.NewRows([]string{"id", "slug", "title", "image_url", "created_at", "updated_at"}).
			AddRow(sceneID, "winter-lounge", "Winter Lounge", "https://cdn.example.com/lounge.jpg", now, now))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, scene_id, product_handle, label, x_percent, y_percent, position")).
		WithArgs(sceneID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "scene_id", "product_handle", "label", "x_percent", "y_percent", "position"}).
			AddRow(uuid.New(), sceneID, "knit-sweater", "Knit Sweater", 42.5, 31.0, 1).
			AddRow(uuid.New(), sceneID, "soft-winter-jacket", "Winter Jacket", 61.0, 55.5, 2))

	scene, err := repo.GetBySlug(context.Background(), "winter-lounge")
	require.NoError(t, err)

	assert.Equal(t, "Winter Lounge", scene.Title)
	require.Len(t, scene.Hotspots, 2)
	assert.Equal(t, "knit-sweater", scene.Hotspots[0].ProductHandle)
	assert.Equal(t, 2, scene.Hotspots[1].Position)
}

func TestSceneRepository_GetBySlug_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewSceneRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM scenes")).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSceneRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewSceneRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "slug", "title", "image_url", "created_at", "updated_at"}).
			AddRow(uuid.New(), "winter-lounge", "Winter Lounge", "https://cdn.example.com/lounge.jpg", now, now).
			AddRow(uuid.New(), "spring-patio", "Spring Patio", "https://cdn.example.com/patio.jpg", now, now))

	scenes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, scenes, 2)
}

func TestPromotionRuleRepository_ListActive(t *testing.T) {
	mock := newMock(t)
	repo := NewPromotionRuleRepository(mock)

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM promotion_rules")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "required_color", "required_size", "companion_handle", "quantity", "active", "created_at"}).
			AddRow(uuid.New(), "winter-jacket-bundle", "Black", "Medium", "soft-winter-jacket", 1, true, now))

	rules, err := repo.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, rules, 1)
	assert.Equal(t, "Black", rules[0].RequiredColor)
	assert.Equal(t, "soft-winter-jacket", rules[0].CompanionHandle)
	assert.True(t, rules[0].Active)
}

func TestPromotionRuleRepository_ListActive_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewPromotionRuleRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM promotion_rules")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListActive(context.Background())
	assert.Error(t, err)
}
