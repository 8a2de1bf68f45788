package repository

import (
	"context"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"gorm.io/gorm"
)

// VolumeRepository 卷仓库接口
type VolumeRepository interface {
	Create(ctx context.Context, volume *model.Volume) error
	GetByID(ctx context.Context, id string) (*model.Volume, error)
	List(ctx context.Context, filters map[string]string) ([]*model.Volume, error)
	Update(ctx context.Context, volume *model.Volume) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}

// volumeFilterColumns 列表过滤键到列名的映射
// 不在映射里的过滤键直接忽略，避免拼接任意列名
var volumeFilterColumns = map[string]string{
	"status":            "status",
	"display_name":      "display_name",
	"availability_zone": "availability_zone",
	"snapshot_id":       "snapshot_id",
	"volume_type_id":    "volume_type_id",
	"attach_status":     "attach_status",
}

type volumeRepository struct {
	db *gorm.DB
}

// NewVolumeRepository 创建卷仓库
func NewVolumeRepository(db *gorm.DB) VolumeRepository {
	return &volumeRepository{db: db}
}

// Create 创建卷
func (r *volumeRepository) Create(ctx context.Context, volume *model.Volume) error {
	return r.db.WithContext(ctx).Create(volume).Error
}

// GetByID 根据 ID 获取卷
func (r *volumeRepository) GetByID(ctx context.Context, id string) (*model.Volume, error) {
	var volume model.Volume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&volume).Error; err != nil {
		return nil, err
	}
	return &volume, nil
}

// List 列出卷，按创建时间排序
func (r *volumeRepository) List(ctx context.Context, filters map[string]string) ([]*model.Volume, error) {
	var volumes []*model.Volume
	query := r.db.WithContext(ctx).Model(&model.Volume{})

	// 应用过滤器
	for key, value := range filters {
		column, ok := volumeFilterColumns[key]
		if !ok {
			continue
		}
		query = query.Where(column+" = ?", value)
	}

	if err := query.Order("created_at").Find(&volumes).Error; err != nil {
		return nil, err
	}

	return volumes, nil
}

// Update 更新卷
func (r *volumeRepository) Update(ctx context.Context, volume *model.Volume) error {
	return r.db.WithContext(ctx).Save(volume).Error
}

// UpdateStatus 只更新卷状态
func (r *volumeRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Volume{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete 软删除卷
func (r *volumeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Volume{}, "id = ?", id).Error
}

// HardDelete 硬删除卷
func (r *volumeRepository) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&model.Volume{}, "id = ?", id).Error
}
