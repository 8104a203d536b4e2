package csrange

import (
	"errors"
	"fmt"
)

// 错误类别，可配合 errors.Is 使用。
var (
	ErrParse           = errors.New("csrange: cannot parse")
	ErrContextMismatch = errors.New("csrange: context mismatch")
	ErrRangeOrder      = errors.New("csrange: range is not obvious")
	ErrLimit           = errors.New("csrange: too many items")
)

// ParseError 表示区间 token 不符合 "上下文+数字-上下文+数字" 结构。
type ParseError struct {
	Token string
	Err   error // 可选，底层原因（例如数字溢出）
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("csrange: failed to parse %q: %v", e.Token, e.Err)
	}

	return fmt.Sprintf("csrange: %q cannot be parsed", e.Token)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}

	return []error{ErrParse}
}

// ContextMismatchError 表示区间左右两侧的上下文在归一化后不一致。
//
// Left / Right 保留用户书写的原始形式。
type ContextMismatchError struct {
	Token string
	Left  string
	Right string
}

func (e *ContextMismatchError) Error() string {
	return fmt.Sprintf("csrange: failed to parse %q: left hand side context %q is different from right hand side context %q",
		e.Token, e.Left, e.Right)
}

func (e *ContextMismatchError) Unwrap() error { return ErrContextMismatch }

// RangeOrderError 表示右边界小于左边界。
type RangeOrderError struct {
	Token string
	From  int
	To    int
}

func (e *RangeOrderError) Error() string {
	return fmt.Sprintf("csrange: failed to parse %q: range from %d to %d is not obvious", e.Token, e.From, e.To)
}

func (e *RangeOrderError) Unwrap() error { return ErrRangeOrder }

// LimitError 表示展开结果超过 [WithLimit] 设置的上限。
type LimitError struct {
	Token string
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("csrange: expanding %q exceeds the limit of %d items", e.Token, e.Limit)
}

func (e *LimitError) Unwrap() error { return ErrLimit }
