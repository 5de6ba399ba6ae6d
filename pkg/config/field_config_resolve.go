package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/gonewx/glyphfield/pkg/embedded"
)

// ConfigSource 配置来源，用于日志
type ConfigSource string

const (
	SourceFile     ConfigSource = "file"
	SourceEmbedded ConfigSource = "embedded"
	SourceDefaults ConfigSource = "defaults"
)

// ResolveFieldConfig 按优先级加载配置：磁盘文件 → 嵌入资源 → 内置默认值
//
// 空路径视为 DefaultConfigPath。只有默认路径允许回退到内置默认值，
// 显式指定但找不到的路径返回错误。
//
// 返回:
//   - *FieldConfig: 生效的配置
//   - ConfigSource: 配置来源
//   - error: 解析、验证失败或显式路径不存在
func ResolveFieldConfig(path string) (*FieldConfig, ConfigSource, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err == nil {
		cfg, err := ParseFieldConfig(data)
		if err != nil {
			return nil, SourceFile, fmt.Errorf("%s: %w", path, err)
		}
		log.Printf("[Config] Loaded field config from %s", path)
		return cfg, SourceFile, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, SourceFile, fmt.Errorf("failed to read field config: %w", err)
	}

	if data, err := embedded.ReadFile(path); err == nil {
		cfg, err := ParseFieldConfig(data)
		if err != nil {
			return nil, SourceEmbedded, fmt.Errorf("embedded %s: %w", path, err)
		}
		log.Printf("[Config] Loaded embedded field config %s", path)
		return cfg, SourceEmbedded, nil
	}

	if path != DefaultConfigPath {
		return nil, SourceFile, fmt.Errorf("field config %s not found", path)
	}

	log.Printf("[Config] Warning: %s not found, using built-in defaults", path)
	return DefaultFieldConfig(), SourceDefaults, nil
}
