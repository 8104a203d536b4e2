package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// structToMap 以 json tag 为 key 将配置结构体转换为嵌套 map。
func structToMap(cfg Config) (map[string]any, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// parseConfigBytes 按扩展名解析配置文件：.json 使用 JSON，其余按 YAML 处理。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch root := stringKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return root, nil
	default:
		return nil, errors.New("config root must be object")
	}
}

// stringKeys 将 YAML 可能产生的 map[any]any 统一为 map[string]any。
func stringKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, child := range typed {
			typed[key] = stringKeys(child)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[fmt.Sprint(key)] = stringKeys(child)
		}

		return out
	case []any:
		for i, child := range typed {
			typed[i] = stringKeys(child)
		}

		return typed
	default:
		return val
	}
}

// mergeMaps 将 src 深度合并进 dst，src 优先。
func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		srcChild, srcIsMap := value.(map[string]any)
		dstChild, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstChild, srcChild)

			continue
		}
		dst[key] = value
	}
}

// setByPath 按点分路径写入值，缺失的中间层会被创建。
func setByPath(dst map[string]any, path string, value any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		dst[head] = value

		return
	}

	child, ok := dst[head].(map[string]any)
	if !ok {
		child = map[string]any{}
		dst[head] = child
	}
	setByPath(child, rest, value)
}

// flattenMapKeys 返回所有叶子 key 的点分路径，例如 expand.interface-types。
func flattenMapKeys(data map[string]any) []string {
	var keys []string
	for key, value := range data {
		child, ok := value.(map[string]any)
		if !ok || len(child) == 0 {
			keys = append(keys, key)

			continue
		}
		for _, sub := range flattenMapKeys(child) {
			keys = append(keys, key+"."+sub)
		}
	}

	return keys
}

// decodeConfigMap 将合并后的 map 解码为配置结构体。
//
// 环境变量是字符串，依赖 WeaklyTypedInput 转换 bool/int；切片按逗号分隔。
func decodeConfigMap(data map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
