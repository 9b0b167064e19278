package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation_FullThreeParts(t *testing.T) {
	loc := ParseLocation("朝阳区-望京-世纪城")
	assert.Equal(t, "朝阳", loc.Region, "区 后缀应被去掉")
	assert.Equal(t, "望京", loc.Block)
	assert.Equal(t, "世纪城", loc.Address)
	assert.False(t, loc.IsEmpty())
}

func TestParseLocation_RegionOnly(t *testing.T) {
	loc := ParseLocation("朝阳区")
	assert.Equal(t, "朝阳", loc.Region)
	assert.Empty(t, loc.Block, "缺失的段不应贡献过滤条件")
	assert.Empty(t, loc.Address)
}

func TestParseLocation_Empty(t *testing.T) {
	loc := ParseLocation("")
	assert.True(t, loc.IsEmpty(), "全空表示匹配所有记录")
}

func TestParseLocation_ExtraPartsIgnored(t *testing.T) {
	loc := ParseLocation("海淀区-中关村-科技园-多余段-再多一段")
	assert.Equal(t, "海淀", loc.Region)
	assert.Equal(t, "中关村", loc.Block)
	assert.Equal(t, "科技园", loc.Address, "只取前三段，多余的忽略")
}

func TestParseLocation_MiddleEmptySegment(t *testing.T) {
	loc := ParseLocation("朝阳区--世纪城")
	assert.Equal(t, "朝阳", loc.Region)
	assert.Empty(t, loc.Block)
	assert.Equal(t, "世纪城", loc.Address)
}
