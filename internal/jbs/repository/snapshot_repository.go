package repository

import (
	"context"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"gorm.io/gorm"
)

// SnapshotRepository 快照仓库接口
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *model.Snapshot) error
	GetByID(ctx context.Context, id string) (*model.Snapshot, error)
	ListByVolumeID(ctx context.Context, volumeID string) ([]*model.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository 创建快照仓库
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Create 创建快照
func (r *snapshotRepository) Create(ctx context.Context, snapshot *model.Snapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

// GetByID 根据 ID 获取快照
func (r *snapshotRepository) GetByID(ctx context.Context, id string) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListByVolumeID 列出卷的全部快照
func (r *snapshotRepository) ListByVolumeID(ctx context.Context, volumeID string) ([]*model.Snapshot, error) {
	var snapshots []*model.Snapshot
	if err := r.db.WithContext(ctx).
		Where("volume_id = ?", volumeID).
		Order("created_at").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}

// Delete 软删除快照
func (r *snapshotRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Snapshot{}, "id = ?", id).Error
}
