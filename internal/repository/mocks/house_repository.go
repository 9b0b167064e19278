package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"house-rental/internal/domain"
	"house-rental/internal/repository"
	"house-rental/internal/search"
)

// HouseRepository 是 repository.HouseRepository 的 Mock
type HouseRepository struct {
	mock.Mock
}

func (m *HouseRepository) FindByID(ctx context.Context, id uint) (*domain.House, error) {
	args := m.Called(ctx, id)
	var house *domain.House
	if args.Get(0) != nil {
		house = args.Get(0).(*domain.House)
	}
	return house, args.Error(1)
}

func (m *HouseRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.House, error) {
	args := m.Called(ctx, ids)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) Search(ctx context.Context, q repository.HouseQuery) ([]domain.House, error) {
	args := m.Called(ctx, q)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) ListOrdered(ctx context.Context, order repository.HouseOrder, limit, offset int) ([]domain.House, error) {
	args := m.Called(ctx, order, limit, offset)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HouseRepository) FindByAddress(ctx context.Context, address string, excludeID uint, limit int) ([]domain.House, error) {
	args := m.Called(ctx, address, excludeID, limit)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) SearchKeyword(ctx context.Context, keyword string, scope repository.KeywordScope, limit int) ([]domain.House, error) {
	args := m.Called(ctx, keyword, scope, limit)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) IncrementPageViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *HouseRepository) CountByRooms(ctx context.Context, loc search.Location, limit int) ([]repository.RoomsCount, error) {
	args := m.Called(ctx, loc, limit)
	var rows []repository.RoomsCount
	if args.Get(0) != nil {
		rows = args.Get(0).([]repository.RoomsCount)
	}
	return rows, args.Error(1)
}

func (m *HouseRepository) TopAddresses(ctx context.Context, loc search.Location, limit int) ([]repository.AddressCount, error) {
	args := m.Called(ctx, loc, limit)
	var rows []repository.AddressCount
	if args.Get(0) != nil {
		rows = args.Get(0).([]repository.AddressCount)
	}
	return rows, args.Error(1)
}

func (m *HouseRepository) FindByLocation(ctx context.Context, loc search.Location, limit int) ([]domain.House, error) {
	args := m.Called(ctx, loc, limit)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) FindByLocationAddresses(ctx context.Context, loc search.Location, addresses []string) ([]domain.House, error) {
	args := m.Called(ctx, loc, addresses)
	var houses []domain.House
	if args.Get(0) != nil {
		houses = args.Get(0).([]domain.House)
	}
	return houses, args.Error(1)
}

func (m *HouseRepository) PricesByRooms(ctx context.Context, loc search.Location, rooms string) ([]string, error) {
	args := m.Called(ctx, loc, rooms)
	var prices []string
	if args.Get(0) != nil {
		prices = args.Get(0).([]string)
	}
	return prices, args.Error(1)
}
