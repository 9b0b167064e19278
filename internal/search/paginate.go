package search

// PageSize 是搜索结果和列表页的固定每页条数。
const PageSize = 9

// windowSpan 是页码窗口的跨度：当前页起最多展示 7 个页码链接。
const windowSpan = 6

// Page 描述一页分页结果的元信息。
type Page struct {
	Num   int // 当前页码 (1 起)
	Total int // 过滤后的总条数
	Pages int // 总页数 (向上取整)
}

// Paginate 对内存中的过滤结果切出第 page 页。
// page < 1 时钳制到第 1 页；page 超出总页数时返回空切片而不是错误。
func Paginate[T any](items []T, page int) ([]T, Page) {
	if page < 1 {
		page = 1
	}
	total := len(items)
	pages := (total + PageSize - 1) / PageSize

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return items[start:end], Page{Num: page, Total: total, Pages: pages}
}

// Window 返回有界的页码窗口：从当前页到 current+6，不超过总页数。
// 调用方据此渲染有限的一排页码链接，无需物化所有页。
func (p Page) Window() []int {
	if p.Pages == 0 {
		return nil
	}
	last := p.Num + windowSpan
	if last > p.Pages {
		last = p.Pages
	}
	var nums []int
	for i := p.Num; i <= last; i++ {
		nums = append(nums, i)
	}
	return nums
}
