package csrange

import "log/slog"

// options 展开器选项。
type options struct {
	resolve    bool     // 是否展开接口缩写
	extraTypes []string // 追加到内置类型表的接口类型
	limit      int      // 结果数量上限，0 表示使用 MaxItems
	logger     *slog.Logger
}

// Option 展开器选项函数。
type Option func(*options)

// WithResolve 启用或禁用接口缩写展开（默认启用）。
//
// 禁用后上下文按原样比较和输出，例如 "Gi1/1-3" 展开为 "Gi1/1" "Gi1/2" "Gi1/3"。
func WithResolve(enabled bool) Option {
	return func(o *options) {
		o.resolve = enabled
	}
}

// WithInterfaceTypes 追加自定义接口类型（规范写法）。
//
// 追加的类型参与唯一前缀匹配，因此可能让原本唯一的缩写变为歧义。
func WithInterfaceTypes(types ...string) Option {
	return func(o *options) {
		o.extraTypes = append(o.extraTypes, types...)
	}
}

// WithLimit 设置单次展开的结果数量上限。
//
// n <= 0 或大于 [MaxItems] 时使用 [MaxItems]。
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = max(n, 0)
	}
}

// WithLogger 设置调试日志输出，默认不输出。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
