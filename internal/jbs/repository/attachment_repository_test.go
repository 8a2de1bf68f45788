package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	attachmentRepo := NewAttachmentRepository(repo.DB())
	ctx := context.Background()

	t.Run("Create and GetByVolumeID", func(t *testing.T) {
		attachment := &model.VolumeAttachment{
			VolumeID:   "vol-1",
			InstanceID: "inst-1",
			Device:     "/dev/vdb",
			AttachTime: time.Now(),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		require.NoError(t, attachmentRepo.Create(ctx, attachment))

		got, err := attachmentRepo.GetByVolumeID(ctx, "vol-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "inst-1", got.InstanceID)
		assert.Equal(t, "/dev/vdb", got.Device)
	})

	t.Run("GetByVolumeID without attachment", func(t *testing.T) {
		got, err := attachmentRepo.GetByVolumeID(ctx, "vol-unattached")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("second attachment for same volume rejected", func(t *testing.T) {
		require.NoError(t, attachmentRepo.Create(ctx, &model.VolumeAttachment{
			VolumeID: "vol-2", InstanceID: "inst-1",
			AttachTime: time.Now(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}))
		err := attachmentRepo.Create(ctx, &model.VolumeAttachment{
			VolumeID: "vol-2", InstanceID: "inst-2",
			AttachTime: time.Now(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
		})
		assert.Error(t, err)
	})

	t.Run("DeleteForVolume", func(t *testing.T) {
		require.NoError(t, attachmentRepo.Create(ctx, &model.VolumeAttachment{
			VolumeID: "vol-3", InstanceID: "inst-1",
			AttachTime: time.Now(), CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}))
		require.NoError(t, attachmentRepo.DeleteForVolume(ctx, "vol-3"))

		got, err := attachmentRepo.GetByVolumeID(ctx, "vol-3")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
