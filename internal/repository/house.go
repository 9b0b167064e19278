package repository

import (
	"context"

	"house-rental/internal/domain"
	"house-rental/internal/search"
)

// HouseOrder 指定列表查询的排序方式。
type HouseOrder int

const (
	// OrderByPublishTime 按发布时间倒序 (最新优先)。
	OrderByPublishTime HouseOrder = iota
	// OrderByViews 按浏览量倒序 (热门优先)。
	OrderByViews
)

// KeywordScope 指定轻量关键词搜索作用的字段范围。
type KeywordScope int

const (
	// ScopeAll 不限定字段。
	ScopeAll KeywordScope = iota
	// ScopeLocation 在 region/block/address 上做子串匹配。
	ScopeLocation
	// ScopeRooms 在 rooms 上做子串匹配。
	ScopeRooms
)

// HouseQuery 是搜索管线第一步可下推到存储层的过滤条件。
// 价格/面积区间无法下推 (原始列是自由文本)，由 service 层在内存中过滤。
type HouseQuery struct {
	Keyword  string          // 在 title/address/block 上做子串匹配
	Location search.Location // 复合定位条件
	Rooms    string          // 户型：精确匹配，"4室及以上" 展开为 4/5/6 室前缀组
	RentType string          // 出租方式：精确匹配
}

// RoomsCount 是按户型分组的计数结果。
type RoomsCount struct {
	Rooms string
	Count int64
}

// AddressCount 是按小区分组的计数结果。
type AddressCount struct {
	Address string
	Count   int64
}

// HouseRepository 定义了房源数据的存储和检索操作。
type HouseRepository interface {
	// FindByID 根据房源 ID 查找；不存在时返回 ErrHouseNotFound。
	FindByID(ctx context.Context, id uint) (*domain.House, error)

	// FindByIDs 按 ID 集合查找，结果顺序为存储层顺序。
	FindByIDs(ctx context.Context, ids []uint) ([]domain.House, error)

	// Search 应用 HouseQuery 中的全部存储层谓词，按发布时间倒序返回
	// 完整结果集 (不分页；区间过滤和分页由调用方在内存中完成)。
	Search(ctx context.Context, q HouseQuery) ([]domain.House, error)

	// ListOrdered 按指定排序返回一段房源列表。
	ListOrdered(ctx context.Context, order HouseOrder, limit, offset int) ([]domain.House, error)

	// Count 返回房源总数。
	Count(ctx context.Context) (int64, error)

	// FindByAddress 查找同小区的其他房源 (排除 excludeID)，用于详情页推荐。
	FindByAddress(ctx context.Context, address string, excludeID uint, limit int) ([]domain.House, error)

	// SearchKeyword 在 scope 指定的字段上做子串匹配，最多返回 limit 条。
	SearchKeyword(ctx context.Context, keyword string, scope KeywordScope, limit int) ([]domain.House, error)

	// IncrementPageViews 将房源浏览量 +1 (列级自增，不做读-改-写)。
	IncrementPageViews(ctx context.Context, id uint) error

	// CountByRooms 在定位条件内按户型分组计数，按计数倒序取前 limit 组。
	CountByRooms(ctx context.Context, loc search.Location, limit int) ([]RoomsCount, error)

	// TopAddresses 在定位条件内按小区分组计数，按计数倒序取前 limit 个；
	// address 为空的记录不参与分组。
	TopAddresses(ctx context.Context, loc search.Location, limit int) ([]AddressCount, error)

	// FindByLocation 返回定位条件内最多 limit 条房源。
	FindByLocation(ctx context.Context, loc search.Location, limit int) ([]domain.House, error)

	// FindByLocationAddresses 返回定位条件内、address 属于给定集合的全部房源。
	FindByLocationAddresses(ctx context.Context, loc search.Location, addresses []string) ([]domain.House, error)

	// PricesByRooms 返回定位条件内指定户型的价格原始文本，按发布时间升序。
	PricesByRooms(ctx context.Context, loc search.Location, rooms string) ([]string, error)
}
