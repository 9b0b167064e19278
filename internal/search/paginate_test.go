package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestPaginate_TwentyItems(t *testing.T) {
	items := ints(20)

	page1, meta := Paginate(items, 1)
	assert.Len(t, page1, 9)
	assert.Equal(t, 20, meta.Total)
	assert.Equal(t, 3, meta.Pages, "pages == ceil(20/9)")

	page3, _ := Paginate(items, 3)
	assert.Len(t, page3, 2)
	assert.Equal(t, []int{18, 19}, page3)

	page4, _ := Paginate(items, 4)
	assert.Empty(t, page4, "超出总页数返回空页而不是错误")
}

func TestPaginate_EmptySet(t *testing.T) {
	got, meta := Paginate([]int(nil), 1)
	assert.Empty(t, got)
	assert.Equal(t, 0, meta.Total)
	assert.Equal(t, 0, meta.Pages)
	assert.Nil(t, meta.Window())
}

func TestPaginate_PageBelowOneClamps(t *testing.T) {
	items := ints(20)
	got, meta := Paginate(items, 0)
	assert.Len(t, got, 9)
	assert.Equal(t, 1, meta.Num)

	got, meta = Paginate(items, -3)
	assert.Len(t, got, 9)
	assert.Equal(t, 1, meta.Num)
}

func TestPage_Window(t *testing.T) {
	// 100 条 ⇒ 12 页；第 1 页的窗口为 1..7
	_, meta := Paginate(ints(100), 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, meta.Window())

	// 第 10 页的窗口在总页数处截断
	_, meta = Paginate(ints(100), 10)
	assert.Equal(t, []int{10, 11, 12}, meta.Window())

	// 单页结果
	_, meta = Paginate(ints(5), 1)
	assert.Equal(t, []int{1}, meta.Window())
}
