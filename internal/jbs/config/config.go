// Package config 提供 JBS 服务的配置加载
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Address 是 API 监听地址
	// 可以通过环境变量 JBS_ADDRESS 配置
	Address string `yaml:"address"`

	// DataDir 是 JBS 数据目录
	// 用于存储 SQLite 数据库
	// 可以通过环境变量 JBS_DATA_DIR 配置
	// 默认：~/.local/share/jbs
	DataDir string `yaml:"data_dir"`

	// ImageCreateEnabled 打开后创建卷时允许携带 imageRef
	// 可以通过环境变量 JBS_IMAGE_CREATE 配置
	ImageCreateEnabled bool `yaml:"image_create_enabled"`

	// VolumeTypes 启动时确保存在的卷类型名称
	VolumeTypes []string `yaml:"volume_types"`
}

// New 加载配置
// 先读配置文件（环境变量 JBS_CONFIG 指定路径，没有则跳过），
// 再用环境变量覆盖单项
func New() (*Config, error) {
	cfg := &Config{
		Address: "0.0.0.0:8776",
		DataDir: getDefaultDataDir(),
	}

	if path := os.Getenv("JBS_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if addr := os.Getenv("JBS_ADDRESS"); addr != "" {
		cfg.Address = addr
	}
	if dir := os.Getenv("JBS_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if raw := os.Getenv("JBS_IMAGE_CREATE"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse JBS_IMAGE_CREATE: %w", err)
		}
		cfg.ImageCreateEnabled = enabled
	}

	return cfg, nil
}

// DBPath 返回 SQLite 数据库文件路径
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "jbs.db")
}

// getDefaultDataDir 获取默认数据目录
func getDefaultDataDir() string {
	// 1. 使用用户主目录下的 .local/share/jbs
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "jbs")
	}

	// 2. 如果无法获取主目录，使用当前目录下的 data
	return filepath.Join(".", "data")
}
