// Package command 提供 csrange 命令行功能的公共部分。
package command

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-csrange/internal/config"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

const configFlagName = "config"

// ConfigFlag 返回 --config flag，未设置时按 config.DefaultPaths 搜索配置文件。
func ConfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    configFlagName,
		Aliases: []string{"c"},
		Usage:   "配置文件路径 (YAML / JSON)",
	}
}

// LoadConfig 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags。
func LoadConfig(cmd *cli.Command) (*config.Config, error) {
	opts := []config.Option{
		config.WithEnvPrefix(config.EnvPrefix),
		config.WithCommand(cmd),
	}
	if path := cmd.String(configFlagName); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	return config.Load(opts...)
}

// NewLogger 按配置的级别创建写入 w 的文本日志。
func NewLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
