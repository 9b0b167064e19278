package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// IDList 是一个保持插入顺序、不含重复项的房源 ID 列表。
// 数据库中以逗号拼接的字符串存储 (如 "3,17,5")，
// 成员判断/增删统一走这里的方法，避免手写字符串切分。
type IDList []uint

// Contains 判断 id 是否已在列表中。
func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Append 将 id 追加到末尾；已存在时返回 false 且不修改列表。
func (l *IDList) Append(id uint) bool {
	if l.Contains(id) {
		return false
	}
	*l = append(*l, id)
	return true
}

// Remove 删除 id；不存在时返回 false 且不修改列表。
func (l *IDList) Remove(id uint) bool {
	for i, v := range *l {
		if v == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Scan 实现 sql.Scanner，从逗号拼接的字符串列反序列化。
// 空串或 NULL 视为空列表；无法解析的片段按脏数据跳过。
func (l *IDList) Scan(value interface{}) error {
	*l = nil
	if value == nil {
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("idlist: unsupported column type %T", value)
	}
	if s == "" {
		return nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			continue
		}
		*l = append(*l, uint(id))
	}
	return nil
}

// Value 实现 driver.Valuer，序列化为逗号拼接的字符串。
func (l IDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	parts := make([]string, len(l))
	for i, id := range l {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ","), nil
}
