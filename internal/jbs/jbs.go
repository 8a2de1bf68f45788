// Package jbs 提供 JBS 服务器的主入口和初始化逻辑
package jbs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/jbs/internal/jbs/api"
	"github.com/jimyag/jbs/internal/jbs/config"
	"github.com/jimyag/jbs/internal/jbs/repository"
	"github.com/jimyag/jbs/internal/jbs/service"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 打开数据库
	repo, err := repository.New(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	// 2. 创建 Volume Service
	volumeService := service.NewVolumeService(repo)

	// 2.1. 落地配置里声明的卷类型
	ctx := context.Background()
	for _, name := range cfg.VolumeTypes {
		if _, err := volumeService.EnsureVolumeType(ctx, name); err != nil {
			return nil, fmt.Errorf("ensure volume type %q: %w", name, err)
		}
	}
	logger.Info().
		Strs("volumeTypes", cfg.VolumeTypes).
		Msg("Volume types ready")

	// 3. 创建 API
	apiInstance, err := api.New(cfg, volumeService)
	if err != nil {
		return nil, err
	}

	server := &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}
	return server, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.api.Shutdown(ctx); err != nil {
		return err
	}
	return s.repo.Close()
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "JBS Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
