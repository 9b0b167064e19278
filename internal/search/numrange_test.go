package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("1000-3000")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, float64(1000), r.Min)
	assert.Equal(t, float64(3000), r.Max)
}

func TestParseRange_EmptyMeansInactive(t *testing.T) {
	r, err := ParseRange("")
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestParseRange_Malformed(t *testing.T) {
	for _, s := range []string{"abc", "1000", "1000-2000-3000", "a-b", "10.5-20"} {
		_, err := ParseRange(s)
		assert.ErrorIs(t, err, ErrBadRange, "input %q", s)
	}
}

func TestRange_Match(t *testing.T) {
	r := &Range{Min: 1000, Max: 3000}

	v, ok := ExtractNumber("2000")
	assert.True(t, r.Match(v, ok), "2000 在 [1000,3000) 内")

	v, ok = ExtractNumber("999")
	assert.False(t, r.Match(v, ok))

	v, ok = ExtractNumber("1000")
	assert.True(t, r.Match(v, ok), "下界包含")

	v, ok = ExtractNumber("3000")
	assert.False(t, r.Match(v, ok), "上界不包含")

	v, ok = ExtractNumber("abc")
	assert.False(t, r.Match(v, ok), "提取失败的记录在过滤器启用时一律排除")
}
