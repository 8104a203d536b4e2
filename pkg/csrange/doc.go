// Package csrange 将逗号分隔的区间简写展开为明确的条目列表。
//
// 适用于端口号、VLAN ID 以及带数字后缀的设备接口名，
// 例如 "Te3/12-14,Gi1/1-3" 展开为 TenGigabitEthernet3/12 ... GigabitEthernet1/3。
//
// # 语法
//
//  1. 输入中任意位置的空白字符都会被忽略
//  2. 以 "," 切分 token，空 token 被丢弃
//  3. 不含 "-" 的 token 为单项，原样输出（可做接口缩写展开）
//  4. 含 "-" 的 token 为区间：[上下文]数字-[上下文]数字，右侧上下文可省略
//
// 区间右侧若写了上下文，必须与左侧一致（比较在缩写展开之后进行），
// 右边界不得小于左边界。
//
// # 接口缩写展开
//
// 上下文开头的字母部分会与已知接口类型（见 [KnownInterfaceTypes]）做大小写不敏感的前缀匹配，
// 仅当唯一匹配时展开：
//   - "Gi1/" → "GigabitEthernet1/"
//   - "po"   → "Port-channel"
//   - "F3/"  → "F3/" (FastEthernet 与 FortyGigabitEthernet 冲突，不做猜测)
//
// 使用 [WithResolve](false) 可禁用该行为。
//
// # 快速开始
//
//	items, err := csrange.Expand("1-3, 5")
//	// [1 2 3 5]
//
//	e := csrange.New(csrange.WithResolve(false), csrange.WithLimit(4096))
//	items, err = e.Expand("Gi1/1-3")
//	// [Gi1/1 Gi1/2 Gi1/3]
//
// # 错误
//
// 所有错误都会中止整次展开，不返回部分结果。错误类型携带出错的 token：
//   - [ParseError] - token 不符合区间结构
//   - [ContextMismatchError] - 左右上下文不同
//   - [RangeOrderError] - 右边界小于左边界
//   - [LimitError] - 超出 [WithLimit] 上限 (默认 [MaxItems])
package csrange
