// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithConfigPaths 设置，或使用 DefaultPaths 搜索
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// AppName 应用名称，用于生成默认配置路径。
const AppName = "csrange"

// EnvPrefix 环境变量前缀。
const EnvPrefix = "CSRANGE_"

// Output formats.
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config 应用配置。
type Config struct {
	Expand ExpandConfig `json:"expand" desc:"区间展开配置"`
	Output OutputConfig `json:"output" desc:"输出配置"`
	Log    LogConfig    `json:"log" desc:"日志配置"`
}

// ExpandConfig 区间展开配置。
type ExpandConfig struct {
	Resolve        bool     `json:"resolve" desc:"展开接口缩写 (Gi → GigabitEthernet)"`
	Limit          int      `json:"limit" desc:"单次展开的条目上限, 0 表示使用内置上限 (16777216)"`
	InterfaceTypes []string `json:"interface-types" desc:"追加的接口类型 (规范写法)"`
}

// OutputConfig 输出配置。
type OutputConfig struct {
	Format string `json:"format" desc:"输出格式: lines / json / yaml"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level string `json:"level" desc:"日志级别: debug / info / warn / error"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			Resolve: true,
			Limit:   65536,
		},
		Output: OutputConfig{
			Format: FormatLines,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate 校验配置取值。
func (c *Config) Validate() error {
	if c.Expand.Limit < 0 {
		return fmt.Errorf("expand.limit must not be negative, got %d", c.Expand.Limit)
	}
	if !slices.Contains([]string{FormatLines, FormatJSON, FormatYAML}, c.Output.Format) {
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel 将日志级别字符串转换为 slog.Level。
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log.level %q: %w", c.Level, err)
	}

	return level, nil
}
