package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	// 使用 t.Cleanup 确保在测试真正结束时清理，支持并发测试
	t.Cleanup(func() {
		_ = repo.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return repo
}

func TestVolumeRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	volumeRepo := NewVolumeRepository(repo.DB())
	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		volume := &model.Volume{
			ID:           "vol-1",
			SizeGB:       10,
			Status:       "available",
			AttachStatus: "detached",
			DisplayName:  "backup",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		err := volumeRepo.Create(ctx, volume)
		assert.NoError(t, err)

		got, err := volumeRepo.GetByID(ctx, "vol-1")
		assert.NoError(t, err)
		assert.Equal(t, volume.ID, got.ID)
		assert.Equal(t, volume.SizeGB, got.SizeGB)
		assert.Equal(t, volume.Status, got.Status)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		_, err := volumeRepo.GetByID(ctx, "vol-missing")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("Update", func(t *testing.T) {
		volume := &model.Volume{
			ID:           "vol-2",
			SizeGB:       10,
			Status:       "creating",
			AttachStatus: "detached",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		require.NoError(t, volumeRepo.Create(ctx, volume))

		volume.Status = "available"
		volume.DisplayName = "renamed"
		require.NoError(t, volumeRepo.Update(ctx, volume))

		got, err := volumeRepo.GetByID(ctx, "vol-2")
		require.NoError(t, err)
		assert.Equal(t, "available", got.Status)
		assert.Equal(t, "renamed", got.DisplayName)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		volume := &model.Volume{
			ID:           "vol-3",
			SizeGB:       10,
			Status:       "available",
			AttachStatus: "detached",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		require.NoError(t, volumeRepo.Create(ctx, volume))

		require.NoError(t, volumeRepo.UpdateStatus(ctx, "vol-3", "deleting"))

		got, err := volumeRepo.GetByID(ctx, "vol-3")
		require.NoError(t, err)
		assert.Equal(t, "deleting", got.Status)
	})

	t.Run("Delete is soft", func(t *testing.T) {
		volume := &model.Volume{
			ID:           "vol-4",
			SizeGB:       10,
			Status:       "available",
			AttachStatus: "detached",
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		require.NoError(t, volumeRepo.Create(ctx, volume))
		require.NoError(t, volumeRepo.Delete(ctx, "vol-4"))

		_, err := volumeRepo.GetByID(ctx, "vol-4")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestVolumeRepository_List(t *testing.T) {
	t.Parallel()

	repo := setupTestDB(t)
	volumeRepo := NewVolumeRepository(repo.DB())
	ctx := context.Background()

	now := time.Now()
	seed := []*model.Volume{
		{ID: "vol-a", SizeGB: 10, Status: "available", AttachStatus: "detached", DisplayName: "backup", AvailabilityZone: "nova", CreatedAt: now, UpdatedAt: now},
		{ID: "vol-b", SizeGB: 20, Status: "in-use", AttachStatus: "attached", DisplayName: "data", AvailabilityZone: "nova", CreatedAt: now.Add(time.Second), UpdatedAt: now},
		{ID: "vol-c", SizeGB: 30, Status: "available", AttachStatus: "detached", DisplayName: "data", AvailabilityZone: "west", CreatedAt: now.Add(2 * time.Second), UpdatedAt: now},
	}
	for _, volume := range seed {
		require.NoError(t, volumeRepo.Create(ctx, volume))
	}

	testcases := []struct {
		name    string
		filters map[string]string
		expect  []string
	}{
		{
			name:    "no filters",
			filters: map[string]string{},
			expect:  []string{"vol-a", "vol-b", "vol-c"},
		},
		{
			name:    "by status",
			filters: map[string]string{"status": "available"},
			expect:  []string{"vol-a", "vol-c"},
		},
		{
			name:    "by display_name",
			filters: map[string]string{"display_name": "data"},
			expect:  []string{"vol-b", "vol-c"},
		},
		{
			name:    "combined",
			filters: map[string]string{"display_name": "data", "availability_zone": "nova"},
			expect:  []string{"vol-b"},
		},
		{
			name:    "unknown filter keys are ignored",
			filters: map[string]string{"status": "available", "bogus": "x"},
			expect:  []string{"vol-a", "vol-c"},
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := volumeRepo.List(ctx, tc.filters)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, volume := range got {
				ids = append(ids, volume.ID)
			}
			assert.Equal(t, tc.expect, ids)
		})
	}
}
