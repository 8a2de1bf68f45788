package model

import (
	"time"

	"gorm.io/gorm"
)

// VolumeType 卷类型表
type VolumeType struct {
	ID        string         `gorm:"primaryKey;type:text;column:id" json:"id"` // vt-{递增 ID}
	Name      string         `gorm:"type:text;not null;index:idx_volume_types_name;column:name" json:"name"`
	CreatedAt time.Time      `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime;index:idx_volume_types_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除
}

// TableName 指定表名
func (VolumeType) TableName() string {
	return "volume_types"
}
