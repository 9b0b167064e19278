package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
	"house-rental/internal/search"
)

// roomsGroupLabel 是 "4 室及以上" 的户型组标签，
// 匹配所有以 4/5/6 室开头的户型。
const roomsGroupLabel = "4室及以上"

// GormHouseRepository 是 HouseRepository 接口的 GORM 实现
type GormHouseRepository struct {
	db *gorm.DB
}

// NewGormHouseRepository 创建 GormHouseRepository 实例
func NewGormHouseRepository(db *gorm.DB) *GormHouseRepository {
	if db == nil {
		panic("database connection cannot be nil for GormHouseRepository")
	}
	return &GormHouseRepository{db: db}
}

// applyLocation 把复合定位条件翻译成 LIKE 谓词的合取。
// 缺失的段不贡献条件；全空时不加任何条件 (匹配所有记录)。
func applyLocation(db *gorm.DB, loc search.Location) *gorm.DB {
	if loc.Region != "" {
		db = db.Where("region LIKE ?", "%"+loc.Region+"%")
	}
	if loc.Block != "" {
		db = db.Where("block LIKE ?", "%"+loc.Block+"%")
	}
	if loc.Address != "" {
		db = db.Where("address LIKE ?", "%"+loc.Address+"%")
	}
	return db
}

func (r *GormHouseRepository) FindByID(ctx context.Context, id uint) (*domain.House, error) {
	var house domain.House
	err := r.db.WithContext(ctx).First(&house, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseNotFound
		}
		return nil, fmt.Errorf("gorm: find house by id %d: %w", id, err)
	}
	return &house, nil
}

func (r *GormHouseRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.House, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var houses []domain.House
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&houses).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find houses by ids: %w", err)
	}
	return houses, nil
}

// Search 应用全部可下推的谓词并按发布时间倒序返回完整结果集。
// 价格/面积区间过滤在 service 层的内存管线中完成。
func (r *GormHouseRepository) Search(ctx context.Context, q repository.HouseQuery) ([]domain.House, error) {
	db := r.db.WithContext(ctx).Model(&domain.House{})

	if q.Keyword != "" {
		kw := "%" + q.Keyword + "%"
		db = db.Where("title LIKE ? OR address LIKE ? OR block LIKE ?", kw, kw, kw)
	}
	db = applyLocation(db, q.Location)
	if q.Rooms != "" {
		if q.Rooms == roomsGroupLabel {
			db = db.Where("rooms LIKE ? OR rooms LIKE ? OR rooms LIKE ?", "4室%", "5室%", "6室%")
		} else {
			db = db.Where("rooms = ?", q.Rooms)
		}
	}
	if q.RentType != "" {
		db = db.Where("rent_type = ?", q.RentType)
	}

	var houses []domain.House
	if err := db.Order("publish_time DESC").Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("gorm: search houses: %w", err)
	}
	return houses, nil
}

func (r *GormHouseRepository) ListOrdered(ctx context.Context, order repository.HouseOrder, limit, offset int) ([]domain.House, error) {
	db := r.db.WithContext(ctx)
	switch order {
	case repository.OrderByViews:
		db = db.Order("page_views DESC")
	default:
		db = db.Order("publish_time DESC")
	}
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	var houses []domain.House
	if err := db.Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("gorm: list houses: %w", err)
	}
	return houses, nil
}

func (r *GormHouseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.House{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gorm: count houses: %w", err)
	}
	return count, nil
}

func (r *GormHouseRepository) FindByAddress(ctx context.Context, address string, excludeID uint, limit int) ([]domain.House, error) {
	var houses []domain.House
	err := r.db.WithContext(ctx).
		Where("address = ? AND id <> ?", address, excludeID).
		Limit(limit).
		Find(&houses).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find houses by address %q: %w", address, err)
	}
	return houses, nil
}

func (r *GormHouseRepository) SearchKeyword(ctx context.Context, keyword string, scope repository.KeywordScope, limit int) ([]domain.House, error) {
	db := r.db.WithContext(ctx).Model(&domain.House{})
	kw := "%" + keyword + "%"
	switch scope {
	case repository.ScopeLocation:
		db = db.Where("region LIKE ? OR block LIKE ? OR address LIKE ?", kw, kw, kw)
	case repository.ScopeRooms:
		db = db.Where("rooms LIKE ?", kw)
	}
	var houses []domain.House
	if err := db.Limit(limit).Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("gorm: keyword search %q: %w", keyword, err)
	}
	return houses, nil
}

// IncrementPageViews 用列级自增更新浏览量，避免读-改-写竞争。
func (r *GormHouseRepository) IncrementPageViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&domain.House{}).
		Where("id = ?", id).
		UpdateColumn("page_views", gorm.Expr("page_views + 1")).Error
	if err != nil {
		return fmt.Errorf("gorm: increment page views for house %d: %w", id, err)
	}
	return nil
}

// roomsCountRow / addressCountRow 是仅用于聚合扫描的行结构。
type roomsCountRow struct {
	Rooms string
	Cnt   int64
}

type addressCountRow struct {
	Address string
	Cnt     int64
}

func (r *GormHouseRepository) CountByRooms(ctx context.Context, loc search.Location, limit int) ([]repository.RoomsCount, error) {
	db := applyLocation(r.db.WithContext(ctx).Model(&domain.House{}), loc)
	var rows []roomsCountRow
	err := db.Select("rooms, COUNT(id) AS cnt").
		Group("rooms").
		Order("cnt DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: count houses by rooms: %w", err)
	}
	out := make([]repository.RoomsCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.RoomsCount{Rooms: row.Rooms, Count: row.Cnt})
	}
	return out, nil
}

func (r *GormHouseRepository) TopAddresses(ctx context.Context, loc search.Location, limit int) ([]repository.AddressCount, error) {
	db := applyLocation(r.db.WithContext(ctx).Model(&domain.House{}), loc)
	var rows []addressCountRow
	err := db.Where("address IS NOT NULL AND address <> ''").
		Select("address, COUNT(id) AS cnt").
		Group("address").
		Order("cnt DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: top addresses: %w", err)
	}
	out := make([]repository.AddressCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.AddressCount{Address: row.Address, Count: row.Cnt})
	}
	return out, nil
}

func (r *GormHouseRepository) FindByLocation(ctx context.Context, loc search.Location, limit int) ([]domain.House, error) {
	db := applyLocation(r.db.WithContext(ctx), loc)
	if limit > 0 {
		db = db.Limit(limit)
	}
	var houses []domain.House
	if err := db.Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("gorm: find houses by location: %w", err)
	}
	return houses, nil
}

func (r *GormHouseRepository) FindByLocationAddresses(ctx context.Context, loc search.Location, addresses []string) ([]domain.House, error) {
	if len(addresses) == 0 {
		return nil, nil
	}
	db := applyLocation(r.db.WithContext(ctx), loc)
	var houses []domain.House
	if err := db.Where("address IN ?", addresses).Find(&houses).Error; err != nil {
		return nil, fmt.Errorf("gorm: find houses by addresses: %w", err)
	}
	return houses, nil
}

func (r *GormHouseRepository) PricesByRooms(ctx context.Context, loc search.Location, rooms string) ([]string, error) {
	db := applyLocation(r.db.WithContext(ctx).Model(&domain.House{}), loc)
	var prices []string
	err := db.Where("rooms = ?", rooms).
		Order("publish_time ASC").
		Pluck("price", &prices).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: prices for rooms %q: %w", rooms, err)
	}
	return prices, nil
}
