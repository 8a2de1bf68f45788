package repository

import (
	"context"
	"testing"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeMetadataRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	metadataRepo := NewVolumeMetadataRepository(repo.DB())
	ctx := context.Background()

	t.Run("ReplaceForVolume and ListByVolumeID", func(t *testing.T) {
		entries := []*model.VolumeMetadata{
			{MetaKey: "team", MetaValue: "infra"},
			{MetaKey: "env", MetaValue: "prod"},
		}
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-1", entries))

		got, err := metadataRepo.ListByVolumeID(ctx, "vol-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		// 保持写入顺序
		assert.Equal(t, "team", got[0].MetaKey)
		assert.Equal(t, "env", got[1].MetaKey)
	})

	t.Run("duplicate keys survive as rows", func(t *testing.T) {
		entries := []*model.VolumeMetadata{
			{MetaKey: "k", MetaValue: "1"},
			{MetaKey: "k", MetaValue: "2"},
		}
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-2", entries))

		got, err := metadataRepo.ListByVolumeID(ctx, "vol-2")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].MetaValue)
		assert.Equal(t, "2", got[1].MetaValue)
	})

	t.Run("Replace overwrites previous entries", func(t *testing.T) {
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-3", []*model.VolumeMetadata{
			{MetaKey: "old", MetaValue: "v"},
		}))
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-3", []*model.VolumeMetadata{
			{MetaKey: "new", MetaValue: "v"},
		}))

		got, err := metadataRepo.ListByVolumeID(ctx, "vol-3")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "new", got[0].MetaKey)
	})

	t.Run("Replace with empty clears", func(t *testing.T) {
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-4", []*model.VolumeMetadata{
			{MetaKey: "k", MetaValue: "v"},
		}))
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-4", nil))

		got, err := metadataRepo.ListByVolumeID(ctx, "vol-4")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("DeleteForVolume", func(t *testing.T) {
		require.NoError(t, metadataRepo.ReplaceForVolume(ctx, "vol-5", []*model.VolumeMetadata{
			{MetaKey: "k", MetaValue: "v"},
		}))
		require.NoError(t, metadataRepo.DeleteForVolume(ctx, "vol-5"))

		got, err := metadataRepo.ListByVolumeID(ctx, "vol-5")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
