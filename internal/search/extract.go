package search

import (
	"regexp"
	"strconv"
)

// 从左到右扫描第一个非负整数或小数。
var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ExtractNumber 从自由文本 (如 "3500元/月"、"75平米") 中提取第一个数值。
// 找不到数字或文本为空时返回 (0, false)；调用方必须区分
// "没有数值" 和 "数值恰好为 0"，不能把 0 当合法值使用。
// 这是有意为之的有损启发式：不保证匹配到的数字在语义上就是价格/面积。
func ExtractNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
