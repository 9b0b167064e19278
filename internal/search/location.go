// Package search 实现房源搜索管线中与存储无关的部分：
// 复合地区串解析、自由文本数值提取、区间过滤和分页。
package search

import "strings"

// Location 是从 "区-街道-小区" 复合字符串解析出的定位条件。
// 非空字段各自贡献一个子串匹配谓词，取逻辑与；
// 全空表示不限定位条件 (匹配所有记录，而不是无结果)。
type Location struct {
	Region  string // 行政区，已去掉 "区" 后缀
	Block   string // 街道/板块
	Address string // 小区
}

// ParseLocation 解析最多三段的复合地区串，多余的段被忽略。
// 第一段中出现的 "区" 会被全部去掉，使 "朝阳区" 匹配存储中的 "朝阳"。
func ParseLocation(s string) Location {
	parts := strings.Split(s, "-")
	var loc Location
	if len(parts) > 0 {
		loc.Region = strings.ReplaceAll(parts[0], "区", "")
	}
	if len(parts) > 1 {
		loc.Block = parts[1]
	}
	if len(parts) > 2 {
		loc.Address = parts[2]
	}
	return loc
}

// IsEmpty 报告是否没有任何定位条件。
func (l Location) IsEmpty() bool {
	return l.Region == "" && l.Block == "" && l.Address == ""
}
