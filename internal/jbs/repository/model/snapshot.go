package model

import (
	"time"

	"gorm.io/gorm"
)

// Snapshot 快照表
type Snapshot struct {
	ID        string         `gorm:"primaryKey;type:text;column:id" json:"id"`                                          // snap-{递增 ID}
	VolumeID  string         `gorm:"type:text;not null;index:idx_snapshots_volume_id;column:volume_id" json:"volumeID"` // 关联 volumes.id
	Status    string         `gorm:"type:text;not null;index:idx_snapshots_status;column:status" json:"status"`         // creating, available, error
	SizeGB    int64          `gorm:"type:integer;not null;column:size_gb" json:"sizeGB"`
	CreatedAt time.Time      `gorm:"type:datetime;not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"type:datetime;not null;column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime;index:idx_snapshots_deleted_at;column:deleted_at" json:"deleted_at,omitempty"` // 软删除
}

// TableName 指定表名
func (Snapshot) TableName() string {
	return "snapshots"
}
