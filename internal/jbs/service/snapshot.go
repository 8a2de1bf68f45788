package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimyag/jbs/internal/jbs/entity"
	"github.com/jimyag/jbs/internal/jbs/repository/model"
	"github.com/jimyag/jbs/pkg/apierror"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CreateSnapshot 为卷创建快照
// 快照继承卷当前的大小
func (s *VolumeService) CreateSnapshot(ctx context.Context, volumeID string) (*entity.Snapshot, error) {
	logger := zerolog.Ctx(ctx)

	m, err := s.volumeRepo.GetByID(ctx, volumeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.WrapError(apierror.ErrVolumeNotFound,
				fmt.Sprintf("Volume '%s' could not be found", volumeID), err)
		}
		return nil, fmt.Errorf("get volume: %w", err)
	}
	if m.Status == entity.VolumeStatusDeleting || m.Status == entity.VolumeStatusError {
		return nil, apierror.WrapError(apierror.ErrInvalidParameterValue,
			fmt.Sprintf("Volume '%s' is in state '%s' and cannot be snapshotted", volumeID, m.Status), nil)
	}

	snapshotID, err := s.idGen.GenerateSnapshotID()
	if err != nil {
		return nil, fmt.Errorf("generate snapshot ID: %w", err)
	}

	now := time.Now().UTC()
	snapshot := &model.Snapshot{
		ID:        snapshotID,
		VolumeID:  volumeID,
		Status:    entity.VolumeStatusAvailable,
		SizeGB:    m.SizeGB,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}

	logger.Info().
		Str("snapshotID", snapshotID).
		Str("volumeID", volumeID).
		Msg("Snapshot created successfully")

	return snapshotModelToEntity(snapshot)
}

// DeleteSnapshot 删除快照
func (s *VolumeService) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	logger := zerolog.Ctx(ctx)

	if _, err := s.snapshotRepo.GetByID(ctx, snapshotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.WrapError(apierror.ErrSnapshotNotFound,
				fmt.Sprintf("Snapshot '%s' could not be found", snapshotID), err)
		}
		return fmt.Errorf("get snapshot: %w", err)
	}

	if err := s.snapshotRepo.Delete(ctx, snapshotID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	logger.Info().
		Str("snapshotID", snapshotID).
		Msg("Snapshot deleted successfully")
	return nil
}
