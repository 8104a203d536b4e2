package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
)

// options 配置加载选项。
type options struct {
	cmd         *cli.Command
	configPaths []string
	requireFile bool // configPaths 中必须有文件被读取
	envPrefix   string
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
//
// flag 名称由配置 key 将 "." 替换为 "-" 得到，例如 expand.limit → --expand-limit。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithConfigPaths 设置配置文件搜索路径，按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithConfigFile 指定唯一的配置文件，文件不存在时 [Load] 返回错误。
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configPaths = []string{path}
		o.requireFile = true
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 环境变量命名规则：前缀 + 大写的配置 key，"." 和 "-" 转为 "_"。
//   - CSRANGE_EXPAND_RESOLVE → expand.resolve
//   - CSRANGE_EXPAND_INTERFACE_TYPES → expand.interface-types (逗号分隔)
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
//  1. ./.csrange.yaml
//  2. ~/.csrange.yaml
//  3. /etc/csrange/config.yaml
//  4. config.yaml
//  5. config/config.yaml
func DefaultPaths() []string {
	paths := []string{"." + AppName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+AppName+".yaml"))
	}

	return append(paths, "/etc/"+AppName+"/config.yaml", "config.yaml", "config/config.yaml")
}

// Load 读取配置并按优先级合并，最后执行 [Config.Validate]。
//
// 优先级 (从低到高)：默认值 → 配置文件 → 环境变量 → CLI flags。
func Load(opts ...Option) (*Config, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths()
	}

	defaults, err := structToMap(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encode default config: %w", err)
	}
	keys := flattenMapKeys(defaults)

	configMap, err := structToMap(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encode default config: %w", err)
	}

	// 配置文件
	loaded, err := mergeFirstFile(configMap, o.configPaths)
	if err != nil {
		return nil, err
	}
	if loaded == "" {
		if o.requireFile {
			return nil, fmt.Errorf("config file %s: %w", o.configPaths[0], os.ErrNotExist)
		}
		slog.Debug("No config file found, using defaults")
	}

	// 环境变量
	if o.envPrefix != "" {
		for envKey, configPath := range envBindings(o.envPrefix, keys) {
			if val, ok := os.LookupEnv(envKey); ok && val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	// CLI flags，仅当用户明确指定时
	if o.cmd != nil {
		for _, key := range keys {
			flag := strings.ReplaceAll(key, ".", "-")
			if o.cmd.IsSet(flag) {
				setByPath(configMap, key, o.cmd.Value(flag))
			}
		}
	}

	var cfg Config
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// mergeFirstFile 将首个存在的配置文件合并进 dst，返回其路径。
func mergeFirstFile(dst map[string]any, paths []string) (string, error) {
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			slog.Debug("Skip unreadable config file", "path", path, "error", err)

			continue
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return "", fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(dst, fileMap)
		slog.Debug("Loaded config from file", "path", path)

		return path, nil
	}

	return "", nil
}

// envBindings 根据配置 key 生成环境变量映射。
//
// 示例 (前缀 "CSRANGE_")：output.format → CSRANGE_OUTPUT_FORMAT
func envBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}
