package csrange

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// subrangePattern 匹配单个区间 token，例如 "Gi5/37-Gi5/48"。
//
// 上下文以非数字结尾，数字部分贪婪到 token 末尾；整体锚定。
// 由于采用最左优先匹配，"Port-channel5-10" 在 "5" 与 "10" 之间的 "-" 处切分。
var subrangePattern = regexp.MustCompile(`^(?:([A-Za-z0-9/-]*\D))?(\d+)-([A-Za-z0-9/-]*\D)?(\d+)$`)

const (
	groupLeftContext = iota + 1
	groupLeftNumber
	groupRightContext
	groupRightNumber
)

// MaxItems 单次展开的条目上限，未通过 [WithLimit] 设置更小的值时生效。
const MaxItems = 1 << 24

// Expander 展开逗号分隔的区间列表。
//
// 创建后不可变，可并发使用。
type Expander struct {
	resolve bool
	types   []string
	limit   int
	logger  *slog.Logger
}

// New 创建展开器，默认启用接口缩写展开，结果数量上限为 [MaxItems]。
func New(opts ...Option) *Expander {
	o := &options{resolve: true}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	types := slices.Clone(knownInterfaceTypes)
	for _, name := range o.extraTypes {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(types, name) {
			types = append(types, name)
		}
	}

	return &Expander{
		resolve: o.resolve,
		types:   types,
		limit:   limitOrMax(o.limit),
		logger:  logger,
	}
}

func limitOrMax(n int) int {
	if n <= 0 || n > MaxItems {
		return MaxItems
	}

	return n
}

var defaultExpander = New()

// Expand 使用默认展开器（启用接口缩写展开）展开 input。
//
//	csrange.Expand("Te3/12-14,Gi1/1-2")
//	// [TenGigabitEthernet3/12 TenGigabitEthernet3/13 TenGigabitEthernet3/14
//	//  GigabitEthernet1/1 GigabitEthernet1/2]
func Expand(input string) ([]string, error) {
	return defaultExpander.Expand(input)
}

// InterfaceTypes 返回展开器使用的接口类型表（内置 + 追加）的副本。
func (e *Expander) InterfaceTypes() []string {
	return slices.Clone(e.types)
}

// Tokenize 去除 input 中所有空白字符后按 "," 切分，丢弃空 token。
func Tokenize(input string) []string {
	compact := strings.Join(strings.Fields(input), "")

	var tokens []string
	for tok := range strings.SplitSeq(compact, ",") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// Expand 将 input 展开为有序列表。
//
// 结果顺序为 token 顺序，区间内按数字升序。
// 任一 token 出错即返回错误，不返回部分结果；空白输入返回空列表。
func (e *Expander) Expand(input string) ([]string, error) {
	out := []string{}

	for _, tok := range Tokenize(input) {
		before := len(out)

		var err error
		if !strings.Contains(tok, "-") {
			out, err = e.appendSingleton(out, tok)
		} else {
			out, err = e.appendRange(out, tok)
		}
		if err != nil {
			e.logger.Debug("Token rejected", "token", tok, "error", err)

			return nil, err
		}

		e.logger.Debug("Token expanded", "token", tok, "items", len(out)-before)
	}

	return out, nil
}

func (e *Expander) normalize(context string) string {
	if !e.resolve {
		return context
	}

	return resolveInterface(context, e.types)
}

func (e *Expander) appendSingleton(out []string, tok string) ([]string, error) {
	if len(out) >= e.limit {
		return nil, &LimitError{Token: tok, Limit: e.limit}
	}

	return append(out, e.normalize(tok)), nil
}

func (e *Expander) appendRange(out []string, tok string) ([]string, error) {
	m := subrangePattern.FindStringSubmatch(tok)
	if m == nil {
		return nil, &ParseError{Token: tok}
	}

	leftRaw, rightRaw := m[groupLeftContext], m[groupRightContext]
	context := e.normalize(leftRaw)
	if rightRaw != "" && e.normalize(rightRaw) != context {
		return nil, &ContextMismatchError{Token: tok, Left: leftRaw, Right: rightRaw}
	}

	from, err := strconv.Atoi(m[groupLeftNumber])
	if err != nil {
		return nil, &ParseError{Token: tok, Err: err}
	}
	to, err := strconv.Atoi(m[groupRightNumber])
	if err != nil {
		return nil, &ParseError{Token: tok, Err: err}
	}

	if to < from {
		return nil, &RangeOrderError{Token: tok, From: from, To: to}
	}

	// from、to 均非负，to-from 不会溢出；to-from+1 在 to-from == math.MaxInt 时会溢出
	if to-from >= e.limit-len(out) {
		return nil, &LimitError{Token: tok, Limit: e.limit}
	}

	out = slices.Grow(out, to-from+1)
	for n := from; ; n++ {
		out = append(out, context+strconv.Itoa(n))
		if n == to { // to 可能等于 math.MaxInt
			break
		}
	}

	return out, nil
}
