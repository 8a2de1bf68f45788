// Package service 提供业务逻辑层的服务实现
package service

import (
	"sort"
	"time"

	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/jinzhu/copier"
)

// volumeModelToEntity 将 model.Volume 转换为 entity.Volume
// 类型引用的解析和元数据、附加状态的补全由调用方完成
func volumeModelToEntity(m *model.Volume) (*entity.Volume, error) {
	e := &entity.Volume{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.UTC().Format(time.RFC3339)

	return e, nil
}

// snapshotModelToEntity 将 model.Snapshot 转换为 entity.Snapshot
func snapshotModelToEntity(m *model.Snapshot) (*entity.Snapshot, error) {
	e := &entity.Snapshot{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}

	// 处理时间字段
	e.CreatedAt = m.CreatedAt.UTC().Format(time.RFC3339)

	return e, nil
}

// volumeTypeModelToEntity 将 model.VolumeType 转换为 entity.VolumeType
func volumeTypeModelToEntity(m *model.VolumeType) (*entity.VolumeType, error) {
	e := &entity.VolumeType{}
	if err := copier.Copy(e, m); err != nil {
		return nil, err
	}
	return e, nil
}

// metadataEntriesToPairs 把元数据行转换为键值对列表，保持存储顺序
func metadataEntriesToPairs(entries []*model.VolumeMetadata) entity.MetadataPairs {
	pairs := make(entity.MetadataPairs, 0, len(entries))
	for _, entry := range entries {
		pairs = append(pairs, entity.MetadataPair{
			Key:   entry.MetaKey,
			Value: entry.MetaValue,
		})
	}
	return pairs
}

// metadataMapToEntries 把元数据映射转换为表行
// 按键排序写入，保证重放时顺序稳定
func metadataMapToEntries(metadata entity.Metadata) []*model.VolumeMetadata {
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := time.Now().UTC()
	entries := make([]*model.VolumeMetadata, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, &model.VolumeMetadata{
			MetaKey:   key,
			MetaValue: metadata[key],
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return entries
}
