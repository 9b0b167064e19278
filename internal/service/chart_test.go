package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
	"house-rental/internal/repository/mocks"
	"house-rental/internal/service"
)

func TestChartService_ScatterData(t *testing.T) {
	// Arrange: 只保留面积和价格都能提取且严格为正的点
	houseRepo := new(mocks.HouseRepository)
	svc := service.NewChartService(houseRepo, nil)
	ctx := context.Background()
	houseRepo.On("FindByLocation", ctx, mock.Anything, 100).Return([]domain.House{
		{Area: "75平米", Price: "3500元/月"},
		{Area: "无数据", Price: "2000元/月"}, // 面积提取失败
		{Area: "60平米", Price: "0元/月"},   // 价格非正
	}, nil).Once()

	// Act
	data, err := svc.ScatterData(ctx, "朝阳区")

	// Assert
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, []float64{75, 3500}, data[0])
}

func TestChartService_PieData_SkipsEmptyRooms(t *testing.T) {
	houseRepo := new(mocks.HouseRepository)
	svc := service.NewChartService(houseRepo, nil)
	ctx := context.Background()
	houseRepo.On("CountByRooms", ctx, mock.Anything, 5).Return([]repository.RoomsCount{
		{Rooms: "2室1厅", Count: 40},
		{Rooms: "", Count: 12}, // 空户型分组剔除
		{Rooms: "3室1厅", Count: 9},
	}, nil).Once()

	data, err := svc.PieData(ctx, "")
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, service.PieItem{Value: 40, Name: "2室1厅"}, data[0])
	assert.Equal(t, service.PieItem{Value: 9, Name: "3室1厅"}, data[1])
}

func TestChartService_ColumnData_Averages(t *testing.T) {
	// Arrange: 均价保留 2 位小数；没有有效价格的小区报 0
	houseRepo := new(mocks.HouseRepository)
	svc := service.NewChartService(houseRepo, nil)
	ctx := context.Background()
	houseRepo.On("TopAddresses", ctx, mock.Anything, 5).Return([]repository.AddressCount{
		{Address: "世纪城", Count: 3},
		{Address: "望京花园", Count: 2},
	}, nil).Once()
	houseRepo.On("FindByLocationAddresses", ctx, mock.Anything, []string{"世纪城", "望京花园"}).
		Return([]domain.House{
			{Address: "世纪城", Price: "1000元/月"},
			{Address: "世纪城", Price: "1001元/月"},
			{Address: "世纪城", Price: "1001元/月"},
			{Address: "望京花园", Price: "面议"}, // 提取失败，不计入
		}, nil).Once()

	// Act
	data, err := svc.ColumnData(ctx, "朝阳区")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"世纪城", "望京花园"}, data.XAxis)
	assert.Equal(t, []float64{1000.67, 0}, data.YAxis)
}

func TestChartService_ColumnData_NoGroups(t *testing.T) {
	houseRepo := new(mocks.HouseRepository)
	svc := service.NewChartService(houseRepo, nil)
	ctx := context.Background()
	houseRepo.On("TopAddresses", ctx, mock.Anything, 5).
		Return([]repository.AddressCount{}, nil).Once()

	data, err := svc.ColumnData(ctx, "海淀区")
	require.NoError(t, err)
	assert.Empty(t, data.XAxis)
	assert.Empty(t, data.YAxis)
	houseRepo.AssertNotCalled(t, "FindByLocationAddresses", mock.Anything, mock.Anything, mock.Anything)
}

func TestChartService_BrokenLineData(t *testing.T) {
	// Arrange: 两条固定户型序列，x 轴对齐最长序列；非正价格丢弃
	houseRepo := new(mocks.HouseRepository)
	svc := service.NewChartService(houseRepo, nil)
	ctx := context.Background()
	houseRepo.On("PricesByRooms", ctx, mock.Anything, "2室1厅").
		Return([]string{"3000元/月", "3200元/月", "0元/月"}, nil).Once()
	houseRepo.On("PricesByRooms", ctx, mock.Anything, "3室1厅").
		Return([]string{"4500元/月"}, nil).Once()

	// Act
	data, err := svc.BrokenLineData(ctx, "朝阳区")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"2室1厅", "3室1厅"}, data.Legend)
	require.Len(t, data.Series, 2)
	assert.Equal(t, []float64{3000, 3200}, data.Series[0].Data)
	assert.Equal(t, []float64{4500}, data.Series[1].Data)
	assert.Equal(t, []string{"数据点 1", "数据点 2"}, data.XAxis)
}

func TestChartService_BrokenLineData_SkipsEmptySeries(t *testing.T) {
	houseRepo := new(mocks.HouseRepository)
	svc := service.NewChartService(houseRepo, nil)
	ctx := context.Background()
	houseRepo.On("PricesByRooms", ctx, mock.Anything, "2室1厅").
		Return([]string{}, nil).Once()
	houseRepo.On("PricesByRooms", ctx, mock.Anything, "3室1厅").
		Return([]string{"4500元/月"}, nil).Once()

	data, err := svc.BrokenLineData(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"3室1厅"}, data.Legend)
	require.Len(t, data.Series, 1)
}

func TestChartService_CacheHitSkipsRepository(t *testing.T) {
	// Arrange: 缓存命中时不触达存储层
	houseRepo := new(mocks.HouseRepository)
	cache := new(mocks.ChartCache)
	svc := service.NewChartService(houseRepo, cache)
	ctx := context.Background()
	cache.On("Get", ctx, "pie:朝阳区", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*[]service.PieItem)
			*dest = []service.PieItem{{Value: 40, Name: "2室1厅"}}
		}).Return(true, nil).Once()

	// Act
	data, err := svc.PieData(ctx, "朝阳区")

	// Assert
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "2室1厅", data[0].Name)
	houseRepo.AssertNotCalled(t, "CountByRooms", mock.Anything, mock.Anything, mock.Anything)
}

func TestChartService_CacheMissStoresResult(t *testing.T) {
	houseRepo := new(mocks.HouseRepository)
	cache := new(mocks.ChartCache)
	svc := service.NewChartService(houseRepo, cache)
	ctx := context.Background()
	cache.On("Get", ctx, "pie:", mock.Anything).Return(false, nil).Once()
	houseRepo.On("CountByRooms", ctx, mock.Anything, 5).
		Return([]repository.RoomsCount{{Rooms: "2室1厅", Count: 1}}, nil).Once()
	cache.On("Set", ctx, "pie:", mock.Anything).Return(nil).Once()

	_, err := svc.PieData(ctx, "")
	require.NoError(t, err)
	cache.AssertExpectations(t)
}
