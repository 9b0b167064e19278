package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
	"house-rental/internal/repository/mocks"
	"house-rental/internal/service"
)

func newHouseService(t *testing.T) (*service.HouseService, *mocks.HouseRepository, *mocks.UserRepository) {
	t.Helper()
	houseRepo := new(mocks.HouseRepository)
	userRepo := new(mocks.UserRepository)
	return service.NewHouseService(houseRepo, userRepo), houseRepo, userRepo
}

func TestHouseService_Search_PriceRangeFilter(t *testing.T) {
	// Arrange: 价格列是自由文本，区间过滤在提取的数值上进行；
	// 提取不出数值的记录在过滤器启用时被排除。
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()
	houseRepo.On("Search", ctx, mock.Anything).Return([]domain.House{
		{ID: 1, Price: "2000元/月"},
		{ID: 2, Price: "999元/月"},
		{ID: 3, Price: "abc"},
		{ID: 4, Price: "3000元/月"}, // 上界开区间，3000 不含
	}, nil).Once()

	// Act
	res, err := svc.Search(ctx, service.SearchParams{Page: 1, Price: "1000-3000"})

	// Assert
	require.NoError(t, err)
	require.Len(t, res.Houses, 1)
	assert.Equal(t, uint(1), res.Houses[0].ID)
}

func TestHouseService_Search_Pagination(t *testing.T) {
	// Arrange: 20 条结果，每页 9 条
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()
	houses := make([]domain.House, 20)
	for i := range houses {
		houses[i] = domain.House{ID: uint(i + 1), Title: fmt.Sprintf("房源 %d", i+1)}
	}
	houseRepo.On("Search", ctx, mock.Anything).Return(houses, nil).Times(3)

	// 第 1 页满页
	res, err := svc.Search(ctx, service.SearchParams{Page: 1})
	require.NoError(t, err)
	assert.Len(t, res.Houses, 9)
	assert.Equal(t, 3, res.Page.Pages)
	assert.Equal(t, 20, res.Page.Total)

	// 第 3 页只剩 2 条
	res, err = svc.Search(ctx, service.SearchParams{Page: 3})
	require.NoError(t, err)
	assert.Len(t, res.Houses, 2)
	assert.Equal(t, uint(19), res.Houses[0].ID)

	// 越界页返回空列表
	res, err = svc.Search(ctx, service.SearchParams{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, res.Houses)
}

func TestHouseService_Search_InvalidRange(t *testing.T) {
	svc, houseRepo, _ := newHouseService(t)

	_, err := svc.Search(context.Background(), service.SearchParams{Page: 1, Price: "1000-2000-3000"})
	assert.True(t, errors.Is(err, service.ErrInvalidRange))

	_, err = svc.Search(context.Background(), service.SearchParams{Page: 1, Area: "abc-def"})
	assert.True(t, errors.Is(err, service.ErrInvalidRange))

	// 区间非法时不应触达存储层
	houseRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestHouseService_Search_LocationPushdown(t *testing.T) {
	// 复合定位串解析后下推给存储层，首段去掉 "区" 后缀
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()
	houseRepo.On("Search", ctx, mock.MatchedBy(func(q repository.HouseQuery) bool {
		return q.Location.Region == "朝阳" && q.Location.Block == "望京" && q.Location.Address == "世纪城"
	})).Return([]domain.House{}, nil).Once()

	_, err := svc.Search(ctx, service.SearchParams{Page: 1, Region: "朝阳区-望京-世纪城"})
	require.NoError(t, err)
	houseRepo.AssertExpectations(t)
}

func TestHouseService_List_HotOrdering(t *testing.T) {
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()
	houseRepo.On("Count", ctx).Return(int64(11), nil).Once()
	houseRepo.On("ListOrdered", ctx, repository.OrderByViews, 9, 9).
		Return([]domain.House{{ID: 10}, {ID: 11}}, nil).Once()

	res, err := svc.List(ctx, "hot_house", 2)
	require.NoError(t, err)
	assert.Len(t, res.Houses, 2)
	assert.Equal(t, 2, res.Page.Pages)
	houseRepo.AssertExpectations(t)
}

func TestHouseService_List_PageClamped(t *testing.T) {
	// page <= 0 一律按第 1 页处理
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()
	houseRepo.On("Count", ctx).Return(int64(3), nil).Once()
	houseRepo.On("ListOrdered", ctx, repository.OrderByPublishTime, 9, 0).
		Return([]domain.House{{ID: 1}, {ID: 2}, {ID: 3}}, nil).Once()

	res, err := svc.List(ctx, "pattern", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page.Num)
	houseRepo.AssertExpectations(t)
}

func TestHouseService_Detail(t *testing.T) {
	// Arrange
	svc, houseRepo, userRepo := newHouseService(t)
	ctx := context.Background()
	house := &domain.House{ID: 5, Address: "世纪城", PageViews: 7}
	user := &domain.User{ID: 1, Name: "alice"}

	houseRepo.On("FindByID", ctx, uint(5)).Return(house, nil).Once()
	houseRepo.On("IncrementPageViews", ctx, uint(5)).Return(nil).Once()
	houseRepo.On("FindByAddress", ctx, "世纪城", uint(5), 6).
		Return([]domain.House{{ID: 8}}, nil).Once()
	userRepo.On("FindByName", ctx, "alice").Return(user, nil).Once()
	userRepo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.SeenID.Contains(5)
	})).Return(nil).Once()

	// Act
	data, err := svc.Detail(ctx, 5, aliceSession())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(8), data.House.PageViews, "浏览量就地 +1")
	assert.Len(t, data.Recommendations, 1)
	houseRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestHouseService_Detail_SeenDeduplicated(t *testing.T) {
	// 已在历史中的房源不再落库
	svc, houseRepo, userRepo := newHouseService(t)
	ctx := context.Background()
	houseRepo.On("FindByID", ctx, uint(5)).
		Return(&domain.House{ID: 5, Address: "世纪城"}, nil).Once()
	houseRepo.On("IncrementPageViews", ctx, uint(5)).Return(nil).Once()
	houseRepo.On("FindByAddress", ctx, "世纪城", uint(5), 6).
		Return([]domain.House{}, nil).Once()
	userRepo.On("FindByName", ctx, "alice").
		Return(&domain.User{ID: 1, Name: "alice", SeenID: domain.IDList{5}}, nil).Once()

	_, err := svc.Detail(ctx, 5, aliceSession())
	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHouseService_Detail_NotFound(t *testing.T) {
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()
	houseRepo.On("FindByID", ctx, uint(404)).Return(nil, repository.ErrHouseNotFound).Once()

	_, err := svc.Detail(ctx, 404, nil)
	assert.True(t, errors.Is(err, service.ErrHouseNotFound))
}

func TestHouseService_KeywordSearch(t *testing.T) {
	svc, houseRepo, _ := newHouseService(t)
	ctx := context.Background()

	// 空关键词直接拒绝
	_, err := svc.KeywordSearch(ctx, "", "")
	assert.True(t, errors.Is(err, service.ErrEmptyKeyword))

	// info 提示地区时限定定位字段
	houseRepo.On("SearchKeyword", ctx, "望京", repository.ScopeLocation, 10).
		Return([]domain.House{{ID: 1}}, nil).Once()
	houses, err := svc.KeywordSearch(ctx, "望京", "请输入地区")
	require.NoError(t, err)
	assert.Len(t, houses, 1)

	// info 提示户型时限定 rooms 字段
	houseRepo.On("SearchKeyword", ctx, "2室1厅", repository.ScopeRooms, 10).
		Return([]domain.House{}, nil).Once()
	_, err = svc.KeywordSearch(ctx, "2室1厅", "请输入户型")
	require.NoError(t, err)
	houseRepo.AssertExpectations(t)
}
