package model

import (
	"time"

	"gorm.io/gorm"
)

// VolumeMetadata 卷元数据表
// 每行一个键值对，保留写入顺序，同一个卷允许出现重复键
type VolumeMetadata struct {
	ID        uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	VolumeID  string         `gorm:"type:text;not null;index:idx_volume_metadata_volume_id;column:volume_id" json:"volumeID"` // 关联 volumes.id
	MetaKey   string         `gorm:"type:text;not null;column:meta_key" json:"metaKey"`
	MetaValue string         `gorm:"type:text;column:meta_value" json:"metaValue"`
	CreatedAt time.Time      `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime;index:idx_volume_metadata_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除
}

// TableName 指定表名
func (VolumeMetadata) TableName() string {
	return "volume_metadata"
}
