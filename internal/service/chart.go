package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"house-rental/internal/repository"
	"house-rental/internal/search"
)

// lineRoomTypes 是折线图固定对比的两个户型。
var lineRoomTypes = []string{"2室1厅", "3室1厅"}

// ChartService 负责四个图表端点的聚合计算。
// 聚合是只读的，结果按地区串缓存；无有效数值的分组报 0 而不是失败。
type ChartService struct {
	houseRepo repository.HouseRepository
	cache     repository.ChartCache
}

// NewChartService 创建 ChartService 实例。cache 可为 nil (不缓存)。
func NewChartService(houseRepo repository.HouseRepository, cache repository.ChartCache) *ChartService {
	if houseRepo == nil {
		panic("HouseRepository cannot be nil for ChartService")
	}
	return &ChartService{houseRepo: houseRepo, cache: cache}
}

// PieItem 是饼图的一个 (户型, 数量) 分组。
type PieItem struct {
	Value int64  `json:"value"`
	Name  string `json:"name"`
}

// ColumnData 是柱状图数据：热门小区及其均价。
type ColumnData struct {
	XAxis []string  `json:"x_axis"`
	YAxis []float64 `json:"y_axis"`
}

// LineSeries 是折线图的一条序列。
type LineSeries struct {
	Name string    `json:"name"`
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

// LineData 是折线图数据：x 轴是序数刻度，对齐最长的序列。
type LineData struct {
	Legend []string     `json:"legend"`
	XAxis  []string     `json:"x_axis"`
	Series []LineSeries `json:"series"`
}

// ScatterData 返回定位范围内最多 100 条房源的 (面积, 价格) 散点，
// 只保留两个提取值都严格为正的点。
func (s *ChartService) ScatterData(ctx context.Context, region string) ([][]float64, error) {
	var cached [][]float64
	if s.hit(ctx, "scatter:"+region, &cached) {
		return cached, nil
	}

	loc := search.ParseLocation(region)
	houses, err := s.houseRepo.FindByLocation(ctx, loc, 100)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("ScatterData: repository query failed")
		return nil, ErrInternalServer
	}

	data := make([][]float64, 0, len(houses))
	for _, h := range houses {
		area, okA := search.ExtractNumber(h.Area)
		price, okP := search.ExtractNumber(h.Price)
		if okA && okP && area > 0 && price > 0 {
			data = append(data, []float64{area, price})
		}
	}
	s.store(ctx, "scatter:"+region, data)
	return data, nil
}

// PieData 返回按户型分组的前 5 组计数 (按数量倒序)，空户型分组剔除。
func (s *ChartService) PieData(ctx context.Context, region string) ([]PieItem, error) {
	var cached []PieItem
	if s.hit(ctx, "pie:"+region, &cached) {
		return cached, nil
	}

	loc := search.ParseLocation(region)
	rows, err := s.houseRepo.CountByRooms(ctx, loc, 5)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("PieData: repository query failed")
		return nil, ErrInternalServer
	}

	data := make([]PieItem, 0, len(rows))
	for _, row := range rows {
		if row.Rooms == "" {
			continue
		}
		data = append(data, PieItem{Value: row.Count, Name: row.Rooms})
	}
	s.store(ctx, "pie:"+region, data)
	return data, nil
}

// ColumnData 返回房源数最多的 5 个小区及各自有效价格的均值
// (保留 2 位小数)；没有有效价格的小区均价报 0。
func (s *ChartService) ColumnData(ctx context.Context, region string) (*ColumnData, error) {
	var cached ColumnData
	if s.hit(ctx, "column:"+region, &cached) {
		return &cached, nil
	}

	loc := search.ParseLocation(region)
	top, err := s.houseRepo.TopAddresses(ctx, loc, 5)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("ColumnData: repository query failed")
		return nil, ErrInternalServer
	}
	if len(top) == 0 {
		return &ColumnData{XAxis: []string{}, YAxis: []float64{}}, nil
	}

	names := make([]string, len(top))
	for i, t := range top {
		names[i] = t.Address
	}
	houses, err := s.houseRepo.FindByLocationAddresses(ctx, loc, names)
	if err != nil {
		logrus.WithError(err).WithField("region", region).Error("ColumnData: repository query failed")
		return nil, ErrInternalServer
	}

	prices := make(map[string][]float64, len(names))
	for _, h := range houses {
		v, ok := search.ExtractNumber(h.Price)
		if ok && v > 0 {
			prices[h.Address] = append(prices[h.Address], v)
		}
	}

	data := &ColumnData{XAxis: names, YAxis: make([]float64, len(names))}
	for i, name := range names {
		ps := prices[name]
		if len(ps) == 0 {
			continue // 无有效价格的小区报 0
		}
		var sum float64
		for _, p := range ps {
			sum += p
		}
		data.YAxis[i] = math.Round(sum/float64(len(ps))*100) / 100
	}
	s.store(ctx, "column:"+region, data)
	return data, nil
}

// BrokenLineData 返回两个固定户型的价格序列：按发布时间升序取价格、
// 提取数值并丢弃非正值；x 轴是对齐最长序列的序数标签。
func (s *ChartService) BrokenLineData(ctx context.Context, region string) (*LineData, error) {
	var cached LineData
	if s.hit(ctx, "line:"+region, &cached) {
		return &cached, nil
	}

	loc := search.ParseLocation(region)
	data := &LineData{Legend: []string{}, Series: []LineSeries{}}
	maxLen := 0
	for _, rooms := range lineRoomTypes {
		raw, err := s.houseRepo.PricesByRooms(ctx, loc, rooms)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"region": region, "rooms": rooms}).
				Error("BrokenLineData: repository query failed")
			return nil, ErrInternalServer
		}
		var prices []float64
		for _, p := range raw {
			if v, ok := search.ExtractNumber(p); ok && v > 0 {
				prices = append(prices, v)
			}
		}
		if len(prices) == 0 {
			continue
		}
		data.Legend = append(data.Legend, rooms)
		data.Series = append(data.Series, LineSeries{Name: rooms, Type: "line", Data: prices})
		if len(prices) > maxLen {
			maxLen = len(prices)
		}
	}

	data.XAxis = make([]string, maxLen)
	for i := range data.XAxis {
		data.XAxis[i] = fmt.Sprintf("数据点 %d", i+1)
	}
	s.store(ctx, "line:"+region, data)
	return data, nil
}

// hit 尝试命中缓存；cache 未配置时恒为未命中。
func (s *ChartService) hit(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dest)
	return ok
}

func (s *ChartService) store(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v)
}
