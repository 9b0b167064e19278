package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"house-rental/internal/domain"
)

func TestIDList_AppendAndRemove(t *testing.T) {
	var l domain.IDList

	// 追加保持插入顺序
	assert.True(t, l.Append(3))
	assert.True(t, l.Append(17))
	assert.True(t, l.Append(5))
	assert.Equal(t, domain.IDList{3, 17, 5}, l)

	// 重复追加被拒绝且不修改列表
	assert.False(t, l.Append(17))
	assert.Equal(t, domain.IDList{3, 17, 5}, l)

	// 删除保持其余元素顺序
	assert.True(t, l.Remove(17))
	assert.Equal(t, domain.IDList{3, 5}, l)

	// 删除不存在的元素被拒绝
	assert.False(t, l.Remove(99))
	assert.Equal(t, domain.IDList{3, 5}, l)

	assert.True(t, l.Contains(3))
	assert.False(t, l.Contains(17))
}

func TestIDList_ScanValue(t *testing.T) {
	var l domain.IDList
	require.NoError(t, l.Scan("3,17,5"))
	assert.Equal(t, domain.IDList{3, 17, 5}, l)

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "3,17,5", v)
}

func TestIDList_ScanEdgeCases(t *testing.T) {
	var l domain.IDList

	// NULL 和空串都是空列表
	require.NoError(t, l.Scan(nil))
	assert.Empty(t, l)
	require.NoError(t, l.Scan(""))
	assert.Empty(t, l)

	// []byte 列与脏片段：无法解析的片段跳过
	require.NoError(t, l.Scan([]byte("3, ,abc,17")))
	assert.Equal(t, domain.IDList{3, 17}, l)

	// 不支持的列类型报错
	assert.Error(t, l.Scan(42))
}

func TestIDList_ValueEmpty(t *testing.T) {
	var l domain.IDList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}
