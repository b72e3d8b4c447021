package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DishForge_Go/internal/catalog"
	"github.com/osse101/DishForge_Go/mocks"
)

func syncReturning(result *catalog.SyncResult, err error) func(context.Context) (*catalog.SyncResult, error) {
	return func(ctx context.Context) (*catalog.SyncResult, error) {
		return result, err
	}
}

func TestCatalogResyncJob_Process(t *testing.T) {
	t.Run("purges cache when the catalog changed", func(t *testing.T) {
		cache := mocks.NewMockCatalogCache(t)
		cache.On("Purge", mock.Anything).Return().Once()

		job := &CatalogResyncJob{
			Sync:  syncReturning(&catalog.SyncResult{IngredientsUpdated: 1}, nil),
			Cache: cache,
		}

		require.NoError(t, job.Process(context.Background()))
	})

	t.Run("keeps cache when the file is unchanged", func(t *testing.T) {
		cache := mocks.NewMockCatalogCache(t)

		job := &CatalogResyncJob{
			Sync:  syncReturning(&catalog.SyncResult{Unchanged: true}, nil),
			Cache: cache,
		}

		require.NoError(t, job.Process(context.Background()))
		cache.AssertNotCalled(t, "Purge", mock.Anything)
	})

	t.Run("keeps cache when nothing was written", func(t *testing.T) {
		cache := mocks.NewMockCatalogCache(t)

		job := &CatalogResyncJob{
			Sync:  syncReturning(&catalog.SyncResult{TypesSkipped: 3, IngredientsSkipped: 7}, nil),
			Cache: cache,
		}

		require.NoError(t, job.Process(context.Background()))
		cache.AssertNotCalled(t, "Purge", mock.Anything)
	})

	t.Run("nil cache", func(t *testing.T) {
		job := &CatalogResyncJob{Sync: syncReturning(&catalog.SyncResult{TypesInserted: 1}, nil)}

		assert.NoError(t, job.Process(context.Background()))
	})

	t.Run("wraps sync errors", func(t *testing.T) {
		syncErr := errors.New("disk gone")
		job := &CatalogResyncJob{Sync: syncReturning(nil, syncErr)}

		err := job.Process(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, syncErr)
		assert.Contains(t, err.Error(), ErrMsgCatalogResyncFailed)
	})

	t.Run("applies timeout", func(t *testing.T) {
		var deadline time.Time
		job := &CatalogResyncJob{
			Sync: func(ctx context.Context) (*catalog.SyncResult, error) {
				deadline, _ = ctx.Deadline()
				return &catalog.SyncResult{Unchanged: true}, nil
			},
			Timeout: time.Minute,
		}

		require.NoError(t, job.Process(context.Background()))
		assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	})
}
