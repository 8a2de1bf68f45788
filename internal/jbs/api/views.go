package api

import (
	"context"

	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/rs/zerolog"
)

// translateVolumeSummaryView 把卷记录翻译为摘要视图
// 摘要视图和详情视图目前包含相同的字段，保留两个入口是为了
// 让 /volumes 和 /volumes/detail 可以独立演进
func translateVolumeSummaryView(ctx context.Context, vol *entity.Volume, imageID string) *entity.VolumeView {
	return translateVolumeDetailView(ctx, vol, imageID)
}

// translateVolumeDetailView 把卷记录翻译为详情视图
// 每翻译一条记录输出一条审计日志
func translateVolumeDetailView(ctx context.Context, vol *entity.Volume, imageID string) *entity.VolumeView {
	logger := zerolog.Ctx(ctx)

	view := &entity.VolumeView{
		ID:                 vol.ID,
		Status:             vol.Status,
		SizeGB:             vol.SizeGB,
		AvailabilityZone:   vol.AvailabilityZone,
		CreatedAt:          vol.CreatedAt,
		DisplayName:        vol.DisplayName,
		DisplayDescription: vol.DisplayDescription,
		VolumeType:         vol.VolumeType,
		SnapshotID:         vol.SnapshotID,
		Attachments:        translateAttachmentViews(vol),
		Metadata:           resolveMetadata(vol.Metadata),
	}
	if imageID != "" {
		view.ImageID = imageID
	}

	logger.Info().
		Str("volumeID", vol.ID).
		Msg("Generating volume view")

	return view
}

// translateAttachmentViews 从卷的挂载状态生成挂载视图列表
// 未挂载的卷返回空列表而不是 nil，保证 JSON 里渲染为 []
func translateAttachmentViews(vol *entity.Volume) []entity.AttachmentView {
	attachments := make([]entity.AttachmentView, 0, 1)
	if vol.AttachStatus == entity.AttachStatusAttached {
		attachments = append(attachments, entity.AttachmentView{
			ID:       vol.ID,
			VolumeID: vol.ID,
			ServerID: vol.InstanceID,
			Device:   vol.Mountpoint,
		})
	}
	return attachments
}

// resolveMetadata 把元数据的两种存储形态归一为 map 视图
func resolveMetadata(src entity.MetadataSource) entity.Metadata {
	metadata := entity.Metadata{}
	switch pairs := src.(type) {
	case entity.MetadataPairs:
		// 键值对列表中的重复键以最后一个为准
		for _, pair := range pairs {
			metadata[pair.Key] = pair.Value
		}
	case entity.MetadataMap:
		for key, value := range pairs {
			metadata[key] = value
		}
	}
	return metadata
}
