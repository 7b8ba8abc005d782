package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica-vista-me/db"
	"optica-vista-me/models"
	"optica-vista-me/repository"
)

func newFrameRepo(t *testing.T) *repository.FrameRepository {
	t.Helper()
	store, err := db.New(t.TempDir())
	require.NoError(t, err)
	return repository.NewFrameRepository(store)
}

func TestFrameRepository_ListEmpty(t *testing.T) {
	repo := newFrameRepo(t)

	frames, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestFrameRepository_Create(t *testing.T) {
	repo := newFrameRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Frame{
		Name:   "Metro Round",
		Brand:  "Persol",
		Price:  189.99,
		Images: []string{"/images/frames/a.jpg", "/images/frames/b.jpg"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "/images/frames/a.jpg", created.ImageURL, "imageUrl must mirror images[0]")

	frames, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, created.ID, frames[0].ID)
}

func TestFrameRepository_CreateWithoutImages(t *testing.T) {
	repo := newFrameRepo(t)

	created, err := repo.Create(context.Background(), models.Frame{Name: "Bare", ImageURL: "stale.jpg"})

	require.NoError(t, err)
	assert.Empty(t, created.ImageURL, "empty images must clear imageUrl")
}

func TestFrameRepository_Update(t *testing.T) {
	repo := newFrameRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Frame{
		Name:   "Metro",
		Price:  100,
		Images: []string{"/images/frames/a.jpg", "/images/frames/b.jpg", "/images/frames/c.jpg"},
	})
	require.NoError(t, err)

	t.Run("merges partial fields", func(t *testing.T) {
		price := 129.5
		updated, removed, err := repo.Update(ctx, created.ID, models.FrameUpdateRequest{Price: &price})

		require.NoError(t, err)
		assert.Empty(t, removed)
		assert.Equal(t, 129.5, updated.Price)
		assert.Equal(t, "Metro", updated.Name, "untouched fields survive")
	})

	t.Run("replacing images reports the removed ones", func(t *testing.T) {
		newImages := []string{"/images/frames/b.jpg", "/images/frames/d.jpg"}
		updated, removed, err := repo.Update(ctx, created.ID, models.FrameUpdateRequest{Images: &newImages})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/images/frames/a.jpg", "/images/frames/c.jpg"}, removed)
		assert.Equal(t, "/images/frames/b.jpg", updated.ImageURL)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, _, err := repo.Update(ctx, "nope", models.FrameUpdateRequest{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestFrameRepository_Delete(t *testing.T) {
	repo := newFrameRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Frame{
		Name:   "Doomed",
		Images: []string{"/images/frames/x.jpg", "/images/frames/y.jpg", "/images/frames/z.jpg"},
	})
	require.NoError(t, err)

	owned, err := repo.Delete(ctx, created.ID)

	require.NoError(t, err)
	assert.Len(t, owned, 3)

	frames, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFrameRepository_ReplaceAllNormalizesImages(t *testing.T) {
	repo := newFrameRepo(t)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx, []models.Frame{
		{ID: "1", Images: []string{"/images/frames/main.jpg"}, ImageURL: "stale.jpg"},
	})
	require.NoError(t, err)

	frames, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "/images/frames/main.jpg", frames[0].ImageURL)
}

func TestFrameRepository_ReplaceAllLeavesInputUntouched(t *testing.T) {
	repo := newFrameRepo(t)

	in := []models.Frame{
		{ID: "1", Images: []string{"/images/frames/main.jpg"}, ImageURL: "stale.jpg"},
	}
	require.NoError(t, repo.ReplaceAll(context.Background(), in))

	// Normalization happens on the persisted copy, not the caller's slice.
	assert.Equal(t, "stale.jpg", in[0].ImageURL)
}
