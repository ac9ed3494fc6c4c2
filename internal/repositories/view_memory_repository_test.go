package repositories_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"catalogview/internal/models"
	"catalogview/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryViewRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewMemoryViewRepository()

	view := &models.View{Status: models.StatusLoading, State: models.DefaultViewState(0)}
	require.NoError(t, repo.Create(view))
	assert.NotEmpty(t, view.ID)
	assert.False(t, view.CreatedAt.IsZero())

	got, err := repo.GetByID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLoading, got.Status)
	assert.Equal(t, models.DefaultPageSize, got.State.PageSize)

	// Duplicate IDs are rejected
	assert.Error(t, repo.Create(&models.View{ID: view.ID}))

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrViewNotFound)
}

func TestMemoryViewRepository_Update(t *testing.T) {
	repo := repositories.NewMemoryViewRepository()
	view := &models.View{State: models.DefaultViewState(10)}
	require.NoError(t, repo.Create(view))

	updated, err := repo.Update(view.ID, func(v *models.View) error {
		v.State.Page = 3
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.State.Page)

	// A failing update leaves the stored view untouched
	_, err = repo.Update(view.ID, func(v *models.View) error {
		v.State.Page = 9
		return errors.New("rejected")
	})
	assert.EqualError(t, err, "rejected")
	got, _ := repo.GetByID(view.ID)
	assert.Equal(t, 3, got.State.Page)

	_, err = repo.Update("missing", func(v *models.View) error { return nil })
	assert.ErrorIs(t, err, repositories.ErrViewNotFound)
}

func TestMemoryViewRepository_DeleteAndDeleteIdle(t *testing.T) {
	repo := repositories.NewMemoryViewRepository()
	first := &models.View{}
	second := &models.View{}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	require.NoError(t, repo.Delete(first.ID))
	assert.ErrorIs(t, repo.Delete(first.ID), repositories.ErrViewNotFound)
	assert.Equal(t, 1, repo.Len())

	assert.Equal(t, 0, repo.DeleteIdle(time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, repo.DeleteIdle(time.Now().Add(time.Second)))
	assert.Equal(t, 0, repo.Len())
}

func TestMemoryViewRepository_ConcurrentUpdates(t *testing.T) {
	repo := repositories.NewMemoryViewRepository()
	view := &models.View{State: models.DefaultViewState(10)}
	require.NoError(t, repo.Create(view))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(view.ID, func(v *models.View) error {
				v.State.Page++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, 51, got.State.Page)
}
