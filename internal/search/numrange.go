package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadRange 表示 "min-max" 区间字符串格式非法。
var ErrBadRange = errors.New("search: malformed range string")

// Range 是应用在派生数值上的半开区间 [Min, Max)。
type Range struct {
	Min float64
	Max float64
}

// ParseRange 解析 "min-max" 形式的区间串 (如 "1000-3000")。
// 空串表示未启用该过滤器，返回 (nil, nil)；
// 不能切分成恰好两个整数时返回 ErrBadRange，调用方应在进入
// 搜索管线前拒绝请求，而不是让管线崩溃。
func ParseRange(s string) (*Range, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	return &Range{Min: float64(min), Max: float64(max)}, nil
}

// Match 对提取结果做区间判断。提取失败 (ok=false) 的记录
// 在过滤器启用时一律视为不匹配。
func (r *Range) Match(v float64, ok bool) bool {
	if !ok {
		return false
	}
	return v >= r.Min && v < r.Max
}
