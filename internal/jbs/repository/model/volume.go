package model

import (
	"time"

	"gorm.io/gorm"
)

// Volume 卷表
type Volume struct {
	ID                 string         `gorm:"primaryKey;type:text;column:id" json:"id"` // vol-{递增 ID}
	SizeGB             int64          `gorm:"type:integer;not null;column:size_gb" json:"sizeGB"`
	Status             string         `gorm:"type:text;not null;index:idx_volumes_status;column:status" json:"status"` // creating, available, in-use, deleting, error
	AttachStatus       string         `gorm:"type:text;not null;column:attach_status" json:"attachStatus"`             // attached, detached
	AvailabilityZone   string         `gorm:"type:text;column:availability_zone" json:"availabilityZone"`
	DisplayName        string         `gorm:"type:text;index:idx_volumes_display_name;column:display_name" json:"displayName"`
	DisplayDescription string         `gorm:"type:text;column:display_description" json:"displayDescription"`
	SnapshotID         string         `gorm:"type:text;index:idx_volumes_snapshot_id;column:snapshot_id" json:"snapshotID"` // 关联 snapshots.id
	ImageID            string         `gorm:"type:text;column:image_id" json:"imageID"`                                     // 从镜像创建时记录来源镜像
	VolumeTypeID       string         `gorm:"type:text;index:idx_volumes_volume_type_id;column:volume_type_id" json:"volumeTypeID"`
	CreatedAt          time.Time      `gorm:"type:datetime;not null;index:idx_volumes_created_at;column:created_at" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"type:datetime;index:idx_volumes_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除
}

// TableName 指定表名
func (Volume) TableName() string {
	return "volumes"
}
