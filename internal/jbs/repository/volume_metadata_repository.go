package repository

import (
	"context"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"gorm.io/gorm"
)

// VolumeMetadataRepository 卷元数据仓库接口
type VolumeMetadataRepository interface {
	ListByVolumeID(ctx context.Context, volumeID string) ([]*model.VolumeMetadata, error)
	ReplaceForVolume(ctx context.Context, volumeID string, entries []*model.VolumeMetadata) error
	DeleteForVolume(ctx context.Context, volumeID string) error
}

type volumeMetadataRepository struct {
	db *gorm.DB
}

// NewVolumeMetadataRepository 创建卷元数据仓库
func NewVolumeMetadataRepository(db *gorm.DB) VolumeMetadataRepository {
	return &volumeMetadataRepository{db: db}
}

// ListByVolumeID 列出卷的全部元数据，保持写入顺序
func (r *volumeMetadataRepository) ListByVolumeID(ctx context.Context, volumeID string) ([]*model.VolumeMetadata, error) {
	var entries []*model.VolumeMetadata
	if err := r.db.WithContext(ctx).
		Where("volume_id = ?", volumeID).
		Order("id").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceForVolume 用给定条目整体替换卷的元数据
func (r *volumeMetadataRepository) ReplaceForVolume(ctx context.Context, volumeID string, entries []*model.VolumeMetadata) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.VolumeMetadata{}, "volume_id = ?", volumeID).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for _, entry := range entries {
			entry.VolumeID = volumeID
		}
		return tx.Create(entries).Error
	})
}

// DeleteForVolume 软删除卷的全部元数据
func (r *volumeMetadataRepository) DeleteForVolume(ctx context.Context, volumeID string) error {
	return r.db.WithContext(ctx).Delete(&model.VolumeMetadata{}, "volume_id = ?", volumeID).Error
}
