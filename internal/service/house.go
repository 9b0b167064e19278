package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
	"house-rental/internal/search"
)

// HouseService 负责房源浏览/搜索相关的业务逻辑。
type HouseService struct {
	houseRepo repository.HouseRepository
	userRepo  repository.UserRepository
}

// NewHouseService 创建 HouseService 实例。
func NewHouseService(houseRepo repository.HouseRepository, userRepo repository.UserRepository) *HouseService {
	if houseRepo == nil {
		panic("HouseRepository cannot be nil for HouseService")
	}
	if userRepo == nil {
		panic("UserRepository cannot be nil for HouseService")
	}
	return &HouseService{houseRepo: houseRepo, userRepo: userRepo}
}

// SearchParams 是 /search 的全部查询参数。
// Price/Area 是 "min-max" 形式的区间串，空串表示未启用。
type SearchParams struct {
	Page     int
	Keyword  string
	Region   string // 复合定位串 "区-街道-小区"
	Rooms    string
	RentType string
	Price    string
	Area     string
}

// SearchResult 是一页搜索结果及分页元信息。
type SearchResult struct {
	Houses []domain.House
	Page   search.Page
}

// Search 执行搜索管线：
//  1. 可下推的谓词 (关键词/定位/户型/出租方式) 交给存储层；
//  2. 价格/面积区间在提取出的数值上做内存过滤 —— 原始列是自由
//     文本，无法下推；提取失败的记录在过滤器启用时一律排除；
//  3. 固定页大小分页。
func (s *HouseService) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	logCtx := logrus.WithFields(logrus.Fields{"keyword": p.Keyword, "region": p.Region, "page": p.Page})

	// 区间串在进管线前校验，格式非法直接拒绝
	priceRange, err := search.ParseRange(p.Price)
	if err != nil {
		logCtx.WithError(err).Warn("Search: malformed price range")
		return nil, ErrInvalidRange
	}
	areaRange, err := search.ParseRange(p.Area)
	if err != nil {
		logCtx.WithError(err).Warn("Search: malformed area range")
		return nil, ErrInvalidRange
	}

	houses, err := s.houseRepo.Search(ctx, repository.HouseQuery{
		Keyword:  p.Keyword,
		Location: search.ParseLocation(p.Region),
		Rooms:    p.Rooms,
		RentType: p.RentType,
	})
	if err != nil {
		logCtx.WithError(err).Error("Search: repository query failed")
		return nil, ErrInternalServer
	}

	if priceRange != nil || areaRange != nil {
		filtered := houses[:0]
		for _, h := range houses {
			if priceRange != nil && !priceRange.Match(search.ExtractNumber(h.Price)) {
				continue
			}
			if areaRange != nil && !areaRange.Match(search.ExtractNumber(h.Area)) {
				continue
			}
			filtered = append(filtered, h)
		}
		houses = filtered
	}

	items, page := search.Paginate(houses, p.Page)
	return &SearchResult{Houses: items, Page: page}, nil
}

// IndexData 是首页数据：热门房源 + 最新房源。
type IndexData struct {
	Hot []domain.House
	New []domain.House
}

// Index 返回首页的热门 8 条和最新 6 条。
func (s *HouseService) Index(ctx context.Context) (*IndexData, error) {
	hot, err := s.houseRepo.ListOrdered(ctx, repository.OrderByViews, 8, 0)
	if err != nil {
		logrus.WithError(err).Error("Index: failed to load hot houses")
		return nil, ErrInternalServer
	}
	latest, err := s.houseRepo.ListOrdered(ctx, repository.OrderByPublishTime, 6, 0)
	if err != nil {
		logrus.WithError(err).Error("Index: failed to load latest houses")
		return nil, ErrInternalServer
	}
	return &IndexData{Hot: hot, New: latest}, nil
}

// List 返回分类列表页："pattern" 按发布时间倒序，"hot_house" 按浏览量倒序。
func (s *HouseService) List(ctx context.Context, category string, page int) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}
	order := repository.OrderByPublishTime
	if category == "hot_house" {
		order = repository.OrderByViews
	}

	total, err := s.houseRepo.Count(ctx)
	if err != nil {
		logrus.WithError(err).Error("List: count failed")
		return nil, ErrInternalServer
	}
	houses, err := s.houseRepo.ListOrdered(ctx, order, search.PageSize, (page-1)*search.PageSize)
	if err != nil {
		logrus.WithError(err).Error("List: repository query failed")
		return nil, ErrInternalServer
	}

	return &SearchResult{
		Houses: houses,
		Page: search.Page{
			Num:   page,
			Total: int(total),
			Pages: (int(total) + search.PageSize - 1) / search.PageSize,
		},
	}, nil
}

// DetailData 是详情页数据：房源本身和同小区推荐。
type DetailData struct {
	House           domain.House
	Recommendations []domain.House
}

// Detail 返回房源详情：浏览量 +1；已登录时把房源记入用户的浏览历史
// (成员判断去重)；附带同小区最多 6 条推荐。
func (s *HouseService) Detail(ctx context.Context, houseID uint, sess *domain.Session) (*DetailData, error) {
	logCtx := logrus.WithField("house_id", houseID)

	house, err := s.houseRepo.FindByID(ctx, houseID)
	if err != nil {
		if errors.Is(err, repository.ErrHouseNotFound) {
			return nil, ErrHouseNotFound
		}
		logCtx.WithError(err).Error("Detail: repository query failed")
		return nil, ErrInternalServer
	}

	if err := s.houseRepo.IncrementPageViews(ctx, houseID); err != nil {
		// 计数失败不阻断详情页
		logCtx.WithError(err).Warn("Detail: failed to increment page views")
	} else {
		house.PageViews++
	}

	if sess != nil {
		s.recordSeen(ctx, sess.UserName, houseID)
	}

	recs, err := s.houseRepo.FindByAddress(ctx, house.Address, house.ID, 6)
	if err != nil {
		logCtx.WithError(err).Warn("Detail: failed to load recommendations")
		recs = nil
	}

	return &DetailData{House: *house, Recommendations: recs}, nil
}

// recordSeen 把房源追加到用户浏览历史，已存在时跳过。
// 历史记录是尽力而为的，失败只记日志。
func (s *HouseService) recordSeen(ctx context.Context, userName string, houseID uint) {
	user, err := s.userRepo.FindByName(ctx, userName)
	if err != nil {
		logrus.WithError(err).WithField("username", userName).Warn("recordSeen: user lookup failed")
		return
	}
	if !user.SeenID.Append(houseID) {
		return
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		logrus.WithError(err).WithField("username", userName).Warn("recordSeen: save failed")
	}
}

// HotRecommendations 返回浏览量最高的 10 条房源 (点击搜索框时展示)。
func (s *HouseService) HotRecommendations(ctx context.Context) ([]domain.House, error) {
	houses, err := s.houseRepo.ListOrdered(ctx, repository.OrderByViews, 10, 0)
	if err != nil {
		logrus.WithError(err).Error("HotRecommendations: repository query failed")
		return nil, ErrInternalServer
	}
	return houses, nil
}

// KeywordSearch 是轻量实时搜索：info 含 "地区" 时搜 region/block/address，
// 含 "户型" 时搜 rooms，否则不限字段；最多 10 条。空关键词直接拒绝。
func (s *HouseService) KeywordSearch(ctx context.Context, keyword, info string) ([]domain.House, error) {
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	scope := repository.ScopeAll
	switch {
	case strings.Contains(info, "地区"):
		scope = repository.ScopeLocation
	case strings.Contains(info, "户型"):
		scope = repository.ScopeRooms
	}
	houses, err := s.houseRepo.SearchKeyword(ctx, keyword, scope, 10)
	if err != nil {
		logrus.WithError(err).WithField("keyword", keyword).Error("KeywordSearch: repository query failed")
		return nil, ErrInternalServer
	}
	return houses, nil
}
