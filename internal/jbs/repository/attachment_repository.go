package repository

import (
	"context"
	"errors"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"gorm.io/gorm"
)

// AttachmentRepository 卷附加关系仓库接口
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *model.VolumeAttachment) error
	GetByVolumeID(ctx context.Context, volumeID string) (*model.VolumeAttachment, error)
	DeleteForVolume(ctx context.Context, volumeID string) error
}

type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository 创建卷附加关系仓库
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

// Create 创建附加关系
func (r *attachmentRepository) Create(ctx context.Context, attachment *model.VolumeAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// GetByVolumeID 获取卷当前的附加关系
// 卷没有附加时返回 (nil, nil)
func (r *attachmentRepository) GetByVolumeID(ctx context.Context, volumeID string) (*model.VolumeAttachment, error) {
	var attachment model.VolumeAttachment
	err := r.db.WithContext(ctx).Where("volume_id = ?", volumeID).First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attachment, nil
}

// DeleteForVolume 软删除卷的附加关系
func (r *attachmentRepository) DeleteForVolume(ctx context.Context, volumeID string) error {
	return r.db.WithContext(ctx).Delete(&model.VolumeAttachment{}, "volume_id = ?", volumeID).Error
}
