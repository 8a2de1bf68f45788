package repository

import (
	"context"

	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"gorm.io/gorm"
)

// VolumeTypeRepository 卷类型仓库接口
type VolumeTypeRepository interface {
	Create(ctx context.Context, volumeType *model.VolumeType) error
	GetByID(ctx context.Context, id string) (*model.VolumeType, error)
	GetByName(ctx context.Context, name string) (*model.VolumeType, error)
	List(ctx context.Context) ([]*model.VolumeType, error)
}

type volumeTypeRepository struct {
	db *gorm.DB
}

// NewVolumeTypeRepository 创建卷类型仓库
func NewVolumeTypeRepository(db *gorm.DB) VolumeTypeRepository {
	return &volumeTypeRepository{db: db}
}

// Create 创建卷类型
func (r *volumeTypeRepository) Create(ctx context.Context, volumeType *model.VolumeType) error {
	return r.db.WithContext(ctx).Create(volumeType).Error
}

// GetByID 根据 ID 获取卷类型
func (r *volumeTypeRepository) GetByID(ctx context.Context, id string) (*model.VolumeType, error) {
	var volumeType model.VolumeType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&volumeType).Error; err != nil {
		return nil, err
	}
	return &volumeType, nil
}

// GetByName 根据名称获取卷类型
func (r *volumeTypeRepository) GetByName(ctx context.Context, name string) (*model.VolumeType, error) {
	var volumeType model.VolumeType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&volumeType).Error; err != nil {
		return nil, err
	}
	return &volumeType, nil
}

// List 列出全部卷类型
func (r *volumeTypeRepository) List(ctx context.Context) ([]*model.VolumeType, error) {
	var volumeTypes []*model.VolumeType
	if err := r.db.WithContext(ctx).Order("name").Find(&volumeTypes).Error; err != nil {
		return nil, err
	}
	return volumeTypes, nil
}
