package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/jimyag/jbs/internal/jbs/service"
	"github.com/jimyag/jbs/pkg/apierror"
	"github.com/jimyag/jbs/pkg/ginx"
	"github.com/rs/zerolog"
)

// VolumeServiceInterface 定义卷服务的接口
type VolumeServiceInterface interface {
	GetVolume(ctx context.Context, volumeID string) (*entity.Volume, error)
	ListVolumes(ctx context.Context, searchOpts map[string]string) ([]entity.Volume, error)
	CreateVolume(ctx context.Context, opts *entity.CreateVolumeOptions) (*entity.Volume, error)
	UpdateVolume(ctx context.Context, volume *entity.Volume, updates *entity.VolumeUpdates) error
	DeleteVolume(ctx context.Context, volume *entity.Volume) error
	GetSnapshot(ctx context.Context, snapshotID string) (*entity.Snapshot, error)
	GetVolumeTypeByName(ctx context.Context, name string) (*entity.VolumeType, error)
}

type Volume struct {
	volumeService VolumeServiceInterface
	limiter       Limiter

	// imageCreateEnabled 打开后创建卷时允许携带 imageRef
	imageCreateEnabled bool
}

func NewVolume(volumeService *service.VolumeService, imageCreateEnabled bool) *Volume {
	return &Volume{
		volumeService:      volumeService,
		limiter:            limitVolumes,
		imageCreateEnabled: imageCreateEnabled,
	}
}

func (v *Volume) RegisterRoutes(router *gin.RouterGroup) {
	volumeRouter := router.Group("/volumes")
	volumeRouter.GET("", ginx.Adapt3(v.ListVolumes))
	volumeRouter.GET("/detail", ginx.Adapt3(v.ListVolumesDetail))
	volumeRouter.GET("/:id", ginx.Adapt5(v.ShowVolume))
	volumeRouter.POST("", ginx.Adapt5(v.CreateVolume))
	volumeRouter.PUT("/:id", ginx.Adapt5(v.UpdateVolume))
	volumeRouter.DELETE("/:id", ginx.Adapt7(http.StatusAccepted, v.DeleteVolume))
}

func (v *Volume) ShowVolume(ctx *gin.Context, req *entity.ShowVolumeRequest) (*entity.ShowVolumeResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("volumeID", req.VolumeID).
		Msg("ShowVolume called")

	volume, err := v.volumeService.GetVolume(ctx, req.VolumeID)
	if err != nil {
		if errors.Is(err, apierror.ErrVolumeNotFound) {
			return nil, volumeNotFound(req.VolumeID, err)
		}
		logger.Error().
			Err(err).
			Msg("Failed to get volume")
		return nil, err
	}

	return &entity.ShowVolumeResponse{
		Volume: translateVolumeDetailView(ctx, volume, ""),
	}, nil
}

func (v *Volume) DeleteVolume(ctx *gin.Context, req *entity.DeleteVolumeRequest) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("volumeID", req.VolumeID).
		Msg("Delete volume")

	volume, err := v.volumeService.GetVolume(ctx, req.VolumeID)
	if err != nil {
		if errors.Is(err, apierror.ErrVolumeNotFound) {
			return volumeNotFound(req.VolumeID, err)
		}
		return err
	}

	if err := v.volumeService.DeleteVolume(ctx, volume); err != nil {
		// 删除过程中卷被并发移除同样按 404 返回
		if errors.Is(err, apierror.ErrVolumeNotFound) {
			return volumeNotFound(req.VolumeID, err)
		}
		logger.Error().
			Err(err).
			Msg("Failed to delete volume")
		return err
	}
	return nil
}

func (v *Volume) ListVolumes(ctx *gin.Context) (*entity.ListVolumesResponse, error) {
	return v.listVolumes(ctx, translateVolumeSummaryView)
}

func (v *Volume) ListVolumesDetail(ctx *gin.Context) (*entity.ListVolumesResponse, error) {
	return v.listVolumes(ctx, translateVolumeDetailView)
}

func (v *Volume) listVolumes(ctx *gin.Context, translate func(context.Context, *entity.Volume, string) *entity.VolumeView) (*entity.ListVolumesResponse, error) {
	rctx := entity.RequestContextFrom(ctx)

	searchOpts := make(map[string]string)
	for key, values := range ctx.Request.URL.Query() {
		if len(values) > 0 {
			searchOpts[key] = values[0]
		}
	}
	// 分页参数不参与过滤
	delete(searchOpts, "limit")
	delete(searchOpts, "offset")
	removeInvalidOptions(ctx, rctx, searchOpts, volumeSearchOptions()...)

	volumes, err := v.volumeService.ListVolumes(ctx, searchOpts)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("Failed to list volumes")
		return nil, err
	}

	limited := v.limiter(ctx, volumes)
	views := make([]entity.VolumeView, 0, len(limited))
	for i := range limited {
		views = append(views, *translate(ctx, &limited[i], ""))
	}
	return &entity.ListVolumesResponse{Volumes: views}, nil
}

func (v *Volume) CreateVolume(ctx *gin.Context, req *entity.CreateVolumeRequest) (*entity.CreateVolumeResponse, error) {
	logger := zerolog.Ctx(ctx)
	if req.Volume == nil {
		return nil, apierror.WrapError(apierror.ErrUnprocessableEntity, "The request body must contain a 'volume' element.", nil)
	}
	params := req.Volume

	opts := &entity.CreateVolumeOptions{
		Metadata: params.Metadata,
	}
	if params.DisplayName != nil {
		opts.DisplayName = *params.DisplayName
	}
	if params.DisplayDescription != nil {
		opts.DisplayDescription = *params.DisplayDescription
	}
	if params.AvailabilityZone != nil {
		opts.AvailabilityZone = *params.AvailabilityZone
	}

	if params.VolumeType != nil && *params.VolumeType != "" {
		volumeType, err := v.volumeService.GetVolumeTypeByName(ctx, *params.VolumeType)
		if err != nil {
			if errors.Is(err, apierror.ErrVolumeTypeNotFound) {
				return nil, apierror.WrapError(apierror.ErrVolumeTypeNotFound,
					fmt.Sprintf("Volume type '%s' does not exist", *params.VolumeType), err)
			}
			return nil, err
		}
		opts.VolumeType = volumeType
	}

	if params.SnapshotID != nil {
		snapshot, err := v.volumeService.GetSnapshot(ctx, *params.SnapshotID)
		if err != nil {
			if errors.Is(err, apierror.ErrSnapshotNotFound) {
				return nil, apierror.WrapError(apierror.ErrSnapshotNotFound,
					fmt.Sprintf("Snapshot '%s' does not exist", *params.SnapshotID), err)
			}
			return nil, err
		}
		opts.Snapshot = snapshot
	}

	// 未显式给出尺寸时继承源快照的尺寸
	opts.SizeGB = params.SizeGB
	if opts.SizeGB == nil && opts.Snapshot != nil {
		opts.SizeGB = &opts.Snapshot.SizeGB
	}

	imageID := ""
	if v.imageCreateEnabled && params.ImageRef != nil {
		if params.SnapshotID != nil {
			return nil, apierror.WrapError(apierror.ErrInvalidParameterCombination,
				"Snapshot and imageRef cannot be specified together.", nil)
		}
		parsed, err := imageIDFromRef(*params.ImageRef)
		if err != nil {
			return nil, err
		}
		imageID = parsed
		opts.ImageID = imageID
	}

	sizeGB := int64(0)
	if opts.SizeGB != nil {
		sizeGB = *opts.SizeGB
	}
	logger.Info().
		Int64("sizeGB", sizeGB).
		Msg("Create volume")

	volume, err := v.volumeService.CreateVolume(ctx, opts)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("Failed to create volume")
		return nil, err
	}

	return &entity.CreateVolumeResponse{
		Volume: translateVolumeDetailView(ctx, volume, imageID),
	}, nil
}

func (v *Volume) UpdateVolume(ctx *gin.Context, req *entity.UpdateVolumeRequest) (*entity.UpdateVolumeResponse, error) {
	logger := zerolog.Ctx(ctx)
	if req.Volume == nil {
		return nil, apierror.WrapError(apierror.ErrUnprocessableEntity, "The request body must contain a 'volume' element.", nil)
	}

	volume, err := v.volumeService.GetVolume(ctx, req.VolumeID)
	if err != nil {
		if errors.Is(err, apierror.ErrVolumeNotFound) {
			return nil, volumeNotFound(req.VolumeID, err)
		}
		return nil, err
	}

	updates := &entity.VolumeUpdates{
		DisplayName:        req.Volume.DisplayName,
		DisplayDescription: req.Volume.DisplayDescription,
		Metadata:           req.Volume.Metadata,
	}
	if err := v.volumeService.UpdateVolume(ctx, volume, updates); err != nil {
		if errors.Is(err, apierror.ErrVolumeNotFound) {
			return nil, volumeNotFound(req.VolumeID, err)
		}
		logger.Error().
			Err(err).
			Msg("Failed to update volume")
		return nil, err
	}

	// 响应基于更新前读到的记录叠加本次修改渲染
	volume.ApplyUpdates(updates)
	return &entity.UpdateVolumeResponse{
		Volume: translateVolumeDetailView(ctx, volume, ""),
	}, nil
}

// imageIDFromRef 从 imageRef 中提取镜像 ID
// 兼容传完整资源 URI 的调用方，取路径的最后一段并要求是 UUID
func imageIDFromRef(imageRef string) (string, error) {
	segments := strings.Split(imageRef, "/")
	imageID := segments[len(segments)-1]
	if _, err := uuid.Parse(imageID); err != nil {
		return "", apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("Invalid imageRef provided: %s", imageRef), err)
	}
	return imageID, nil
}

func volumeNotFound(volumeID string, err error) error {
	return apierror.WrapError(apierror.ErrVolumeNotFound,
		fmt.Sprintf("Volume '%s' could not be found", volumeID), err)
}
