package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/jimyag/jbs/internal/jbs/repository"
	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/jimyag/jbs/pkg/apierror"
	"github.com/jimyag/jbs/pkg/idgen"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// defaultAvailabilityZone 请求没有指定可用区时使用的缺省值
const defaultAvailabilityZone = "nova"

// VolumeService 卷服务
type VolumeService struct {
	volumeRepo     repository.VolumeRepository
	metadataRepo   repository.VolumeMetadataRepository
	typeRepo       repository.VolumeTypeRepository
	snapshotRepo   repository.SnapshotRepository
	attachmentRepo repository.AttachmentRepository
	idGen          *idgen.Generator
}

// NewVolumeService 创建新的 Volume Service
func NewVolumeService(repo *repository.Repository) *VolumeService {
	db := repo.DB()
	return &VolumeService{
		volumeRepo:     repository.NewVolumeRepository(db),
		metadataRepo:   repository.NewVolumeMetadataRepository(db),
		typeRepo:       repository.NewVolumeTypeRepository(db),
		snapshotRepo:   repository.NewSnapshotRepository(db),
		attachmentRepo: repository.NewAttachmentRepository(db),
		idGen:          idgen.New(),
	}
}

// GetVolume 根据 ID 获取卷
func (s *VolumeService) GetVolume(ctx context.Context, volumeID string) (*entity.Volume, error) {
	m, err := s.volumeRepo.GetByID(ctx, volumeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WrapError(apierror.ErrVolumeNotFound,
				fmt.Sprintf("Volume '%s' could not be found", volumeID), err)
		}
		return nil, fmt.Errorf("get volume: %w", err)
	}
	return s.hydrateVolume(ctx, m)
}

// ListVolumes 列出卷
// searchOpts 的键已经在 API 层按调用方角色过滤过
func (s *VolumeService) ListVolumes(ctx context.Context, searchOpts map[string]string) ([]entity.Volume, error) {
	models, err := s.volumeRepo.List(ctx, searchOpts)
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}

	volumes := make([]entity.Volume, 0, len(models))
	for _, m := range models {
		volume, err := s.hydrateVolume(ctx, m)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, *volume)
	}
	return volumes, nil
}

// CreateVolume 创建卷
func (s *VolumeService) CreateVolume(ctx context.Context, opts *entity.CreateVolumeOptions) (*entity.Volume, error) {
	logger := zerolog.Ctx(ctx)

	if opts.SizeGB == nil || *opts.SizeGB <= 0 {
		return nil, apierror.WrapError(apierror.ErrInvalidParameterValue,
			"Volume size must be a positive integer", nil)
	}

	volumeID, err := s.idGen.GenerateVolumeID()
	if err != nil {
		return nil, fmt.Errorf("generate volume ID: %w", err)
	}

	availabilityZone := opts.AvailabilityZone
	if availabilityZone == "" {
		availabilityZone = defaultAvailabilityZone
	}

	now := time.Now().UTC()
	m := &model.Volume{
		ID:                 volumeID,
		SizeGB:             *opts.SizeGB,
		Status:             entity.VolumeStatusCreating,
		AttachStatus:       entity.AttachStatusDetached,
		AvailabilityZone:   availabilityZone,
		DisplayName:        opts.DisplayName,
		DisplayDescription: opts.DisplayDescription,
		ImageID:            opts.ImageID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if opts.Snapshot != nil {
		m.SnapshotID = opts.Snapshot.ID
	}
	if opts.VolumeType != nil {
		m.VolumeTypeID = opts.VolumeType.ID
	}

	if err := s.volumeRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create volume: %w", err)
	}

	if len(opts.Metadata) > 0 {
		if err := s.metadataRepo.ReplaceForVolume(ctx, volumeID, metadataMapToEntries(opts.Metadata)); err != nil {
			return nil, fmt.Errorf("store volume metadata: %w", err)
		}
	}

	// 没有异步的供给后端，卷直接进入 available
	m.Status = entity.VolumeStatusAvailable
	if err := s.volumeRepo.UpdateStatus(ctx, volumeID, m.Status); err != nil {
		return nil, fmt.Errorf("update volume status: %w", err)
	}

	logger.Info().
		Str("volumeID", volumeID).
		Int64("sizeGB", m.SizeGB).
		Msg("Volume created successfully")

	volume, err := volumeModelToEntity(m)
	if err != nil {
		return nil, fmt.Errorf("convert volume: %w", err)
	}
	volume.VolumeType = entity.ResolveVolumeType(m.VolumeTypeID, opts.VolumeType)
	// 创建路径返回映射形态的元数据
	if opts.Metadata != nil {
		volume.Metadata = entity.MetadataMap(opts.Metadata)
	} else {
		volume.Metadata = entity.MetadataMap{}
	}
	return volume, nil
}

// UpdateVolume 更新卷的可编辑字段
func (s *VolumeService) UpdateVolume(ctx context.Context, volume *entity.Volume, updates *entity.VolumeUpdates) error {
	logger := zerolog.Ctx(ctx)

	m, err := s.volumeRepo.GetByID(ctx, volume.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.WrapError(apierror.ErrVolumeNotFound,
				fmt.Sprintf("Volume '%s' could not be found", volume.ID), err)
		}
		return fmt.Errorf("get volume: %w", err)
	}

	if updates.DisplayName != nil {
		m.DisplayName = *updates.DisplayName
	}
	if updates.DisplayDescription != nil {
		m.DisplayDescription = *updates.DisplayDescription
	}
	m.UpdatedAt = time.Now().UTC()
	if err := s.volumeRepo.Update(ctx, m); err != nil {
		return fmt.Errorf("update volume: %w", err)
	}

	// 提交了元数据就整体替换
	if updates.Metadata != nil {
		if err := s.metadataRepo.ReplaceForVolume(ctx, m.ID, metadataMapToEntries(updates.Metadata)); err != nil {
			return fmt.Errorf("update volume metadata: %w", err)
		}
	}

	logger.Info().
		Str("volumeID", m.ID).
		Msg("Volume updated successfully")
	return nil
}

// DeleteVolume 删除卷
// 对调用方是异步语义：卷先进入 deleting，随后软删除记录
func (s *VolumeService) DeleteVolume(ctx context.Context, volume *entity.Volume) error {
	logger := zerolog.Ctx(ctx)

	m, err := s.volumeRepo.GetByID(ctx, volume.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.WrapError(apierror.ErrVolumeNotFound,
				fmt.Sprintf("Volume '%s' could not be found", volume.ID), err)
		}
		return fmt.Errorf("get volume: %w", err)
	}

	if m.AttachStatus == entity.AttachStatusAttached {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("Volume '%s' is attached and cannot be deleted", m.ID), nil)
	}

	if err := s.volumeRepo.UpdateStatus(ctx, m.ID, entity.VolumeStatusDeleting); err != nil {
		return fmt.Errorf("update volume status: %w", err)
	}
	if err := s.metadataRepo.DeleteForVolume(ctx, m.ID); err != nil {
		return fmt.Errorf("delete volume metadata: %w", err)
	}
	if err := s.volumeRepo.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete volume: %w", err)
	}

	logger.Info().
		Str("volumeID", m.ID).
		Msg("Volume deleted successfully")
	return nil
}

// AttachVolume 把卷附加到实例
func (s *VolumeService) AttachVolume(ctx context.Context, volumeID string, instanceID string, mountpoint string) (*entity.Volume, error) {
	logger := zerolog.Ctx(ctx)

	m, err := s.volumeRepo.GetByID(ctx, volumeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WrapError(apierror.ErrVolumeNotFound,
				fmt.Sprintf("Volume '%s' could not be found", volumeID), err)
		}
		return nil, fmt.Errorf("get volume: %w", err)
	}
	if m.AttachStatus == entity.AttachStatusAttached {
		return nil, apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("Volume '%s' is already attached", volumeID), nil)
	}

	now := time.Now().UTC()
	attachment := &model.VolumeAttachment{
		VolumeID:   volumeID,
		InstanceID: instanceID,
		Device:     mountpoint,
		AttachTime: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}

	m.Status = entity.VolumeStatusInUse
	m.AttachStatus = entity.AttachStatusAttached
	m.UpdatedAt = now
	if err := s.volumeRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update volume: %w", err)
	}

	logger.Info().
		Str("volumeID", volumeID).
		Str("instanceID", instanceID).
		Msg("Volume attached successfully")
	return s.hydrateVolume(ctx, m)
}

// DetachVolume 解除卷的附加关系
func (s *VolumeService) DetachVolume(ctx context.Context, volumeID string) error {
	logger := zerolog.Ctx(ctx)

	m, err := s.volumeRepo.GetByID(ctx, volumeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.WrapError(apierror.ErrVolumeNotFound,
				fmt.Sprintf("Volume '%s' could not be found", volumeID), err)
		}
		return fmt.Errorf("get volume: %w", err)
	}
	if m.AttachStatus != entity.AttachStatusAttached {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("Volume '%s' is not attached", volumeID), nil)
	}

	if err := s.attachmentRepo.DeleteForVolume(ctx, volumeID); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}

	m.Status = entity.VolumeStatusAvailable
	m.AttachStatus = entity.AttachStatusDetached
	m.UpdatedAt = time.Now().UTC()
	if err := s.volumeRepo.Update(ctx, m); err != nil {
		return fmt.Errorf("update volume: %w", err)
	}

	logger.Info().
		Str("volumeID", volumeID).
		Msg("Volume detached successfully")
	return nil
}

// GetSnapshot 根据 ID 获取快照
func (s *VolumeService) GetSnapshot(ctx context.Context, snapshotID string) (*entity.Snapshot, error) {
	m, err := s.snapshotRepo.GetByID(ctx, snapshotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WrapError(apierror.ErrSnapshotNotFound,
				fmt.Sprintf("Snapshot '%s' could not be found", snapshotID), err)
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	snapshot, err := snapshotModelToEntity(m)
	if err != nil {
		return nil, fmt.Errorf("convert snapshot: %w", err)
	}
	return snapshot, nil
}

// GetVolumeTypeByName 根据名称获取卷类型
func (s *VolumeService) GetVolumeTypeByName(ctx context.Context, name string) (*entity.VolumeType, error) {
	m, err := s.typeRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WrapError(apierror.ErrVolumeTypeNotFound,
				fmt.Sprintf("Volume type '%s' could not be found", name), err)
		}
		return nil, fmt.Errorf("get volume type: %w", err)
	}
	volumeType, err := volumeTypeModelToEntity(m)
	if err != nil {
		return nil, fmt.Errorf("convert volume type: %w", err)
	}
	return volumeType, nil
}

// EnsureVolumeType 确保给定名称的卷类型存在，返回其记录
// 启动时用来落地配置里声明的类型
func (s *VolumeService) EnsureVolumeType(ctx context.Context, name string) (*entity.VolumeType, error) {
	volumeType, err := s.GetVolumeTypeByName(ctx, name)
	if err == nil {
		return volumeType, nil
	}
	if !errors.Is(err, apierror.ErrVolumeTypeNotFound) {
		return nil, err
	}

	typeID, err := s.idGen.GenerateVolumeTypeID()
	if err != nil {
		return nil, fmt.Errorf("generate volume type ID: %w", err)
	}
	now := time.Now().UTC()
	m := &model.VolumeType{
		ID:        typeID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.typeRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create volume type: %w", err)
	}
	return &entity.VolumeType{ID: typeID, Name: name}, nil
}

// hydrateVolume 把卷表行补全为完整的业务记录
// 元数据以键值对列表形态返回，附加信息从附加关系表读取
func (s *VolumeService) hydrateVolume(ctx context.Context, m *model.Volume) (*entity.Volume, error) {
	volume, err := volumeModelToEntity(m)
	if err != nil {
		return nil, fmt.Errorf("convert volume: %w", err)
	}

	entries, err := s.metadataRepo.ListByVolumeID(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list volume metadata: %w", err)
	}
	volume.Metadata = metadataEntriesToPairs(entries)

	if m.AttachStatus == entity.AttachStatusAttached {
		attachment, err := s.attachmentRepo.GetByVolumeID(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("get volume attachment: %w", err)
		}
		if attachment != nil {
			volume.InstanceID = attachment.InstanceID
			volume.Mountpoint = attachment.Device
		}
	}

	// 类型引用在跨越服务边界时解析，悬空引用退化为字符串形式的类型名
	var volumeType *entity.VolumeType
	if m.VolumeTypeID != "" {
		typeModel, err := s.typeRepo.GetByID(ctx, m.VolumeTypeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get volume type: %w", err)
		}
		if err == nil {
			volumeType, err = volumeTypeModelToEntity(typeModel)
			if err != nil {
				return nil, fmt.Errorf("convert volume type: %w", err)
			}
		}
	}
	volume.VolumeType = entity.ResolveVolumeType(m.VolumeTypeID, volumeType)

	return volume, nil
}
