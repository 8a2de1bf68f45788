package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSnapshotRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	snapshotRepo := NewSnapshotRepository(repo.DB())
	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		snapshot := &model.Snapshot{
			ID:        "snap-1",
			VolumeID:  "vol-1",
			Status:    "available",
			SizeGB:    42,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, snapshotRepo.Create(ctx, snapshot))

		got, err := snapshotRepo.GetByID(ctx, "snap-1")
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.SizeGB)
		assert.Equal(t, "vol-1", got.VolumeID)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := snapshotRepo.GetByID(ctx, "snap-missing")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("ListByVolumeID", func(t *testing.T) {
		now := time.Now()
		require.NoError(t, snapshotRepo.Create(ctx, &model.Snapshot{
			ID: "snap-2", VolumeID: "vol-2", Status: "available", SizeGB: 1,
			CreatedAt: now, UpdatedAt: now,
		}))
		require.NoError(t, snapshotRepo.Create(ctx, &model.Snapshot{
			ID: "snap-3", VolumeID: "vol-2", Status: "available", SizeGB: 2,
			CreatedAt: now.Add(time.Second), UpdatedAt: now,
		}))

		snapshots, err := snapshotRepo.ListByVolumeID(ctx, "vol-2")
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.Equal(t, "snap-2", snapshots[0].ID)
	})

	t.Run("Delete is soft", func(t *testing.T) {
		require.NoError(t, snapshotRepo.Create(ctx, &model.Snapshot{
			ID: "snap-4", VolumeID: "vol-3", Status: "available", SizeGB: 1,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}))
		require.NoError(t, snapshotRepo.Delete(ctx, "snap-4"))

		_, err := snapshotRepo.GetByID(ctx, "snap-4")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}
