package http

import (
	"context"
	"encoding/json"

	"b2better/internal/core/application/usecases/commands"
	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderStatusUpdater struct{ mock.Mock }

func (m *MockOrderStatusUpdater) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderCanceller struct{ mock.Mock }

func (m *MockOrderCanceller) Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}

type MockOrderDetailReader struct{ mock.Mock }

func (m *MockOrderDetailReader) Handle(ctx context.Context, query queries.GetOrderDetailQuery) (queries.OrderDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetail), args.Error(1)
}

type MockOrderStatisticsReader struct{ mock.Mock }

func (m *MockOrderStatisticsReader) Handle(
	ctx context.Context,
	query queries.GetOrderStatisticsQuery,
) (queries.OrderStatistics, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderStatistics), args.Error(1)
}

type MockDashboardStatsReader struct{ mock.Mock }

func (m *MockDashboardStatsReader) Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (queries.DashboardStats, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DashboardStats), args.Error(1)
}

type MockRecentOrdersReader struct{ mock.Mock }

func (m *MockRecentOrdersReader) Handle(ctx context.Context, query queries.GetRecentOrdersQuery) ([]queries.RecentOrder, error) {
	args := m.Called(ctx, query)
	recent, _ := args.Get(0).([]queries.RecentOrder)
	return recent, args.Error(1)
}

type MockActivityLister struct{ mock.Mock }

func (m *MockActivityLister) Handle(
	ctx context.Context,
	query queries.ListActivitiesQuery,
) (queries.ListActivitiesQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListActivitiesQueryResponse), args.Error(1)
}

type MockRecommendationsReader struct{ mock.Mock }

func (m *MockRecommendationsReader) Handle(ctx context.Context, query queries.GetRecommendationsQuery) (json.RawMessage, error) {
	args := m.Called(ctx, query)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

type MockRetailerLister struct{ mock.Mock }

func (m *MockRetailerLister) Handle(ctx context.Context, query queries.ListRetailersQuery) (queries.ListRetailersQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListRetailersQueryResponse), args.Error(1)
}

type MockRetailerProfileReader struct{ mock.Mock }

func (m *MockRetailerProfileReader) Handle(ctx context.Context, query queries.GetRetailerProfileQuery) (queries.RetailerProfile, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.RetailerProfile), args.Error(1)
}

type MockRetailerCategoryLister struct{ mock.Mock }

func (m *MockRetailerCategoryLister) Handle(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}
