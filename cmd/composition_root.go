package cmd

import (
	"log/slog"

	httpin "b2better/internal/adapters/in/http"
	"b2better/internal/adapters/out/postgres"
	"b2better/internal/core/application/usecases/commands"
	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/ports"
	"b2better/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	activities      ports.ActivityRepository
	recommendations ports.RecommendationClient
	logger          *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	activities ports.ActivityRepository,
	recommendations ports.RecommendationClient,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		activities:      activities,
		recommendations: recommendations,
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateRecordActivityCommandHandler() commands.RecordActivityCommandHandler {
	return commands.NewRecordActivityCommandHandler(c.activities, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.CreateRecordActivityCommandHandler())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.CreateRecordActivityCommandHandler())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.CreateRecordActivityCommandHandler())
}

func (c *CompositionRoot) CreateRefreshRetailerStatsCommandHandler() commands.RefreshRetailerStatsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshRetailerStatsCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentOrdersQueryHandler() queries.GetRecentOrdersQueryHandler {
	return queries.NewGetRecentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListActivitiesQueryHandler() queries.ListActivitiesQueryHandler {
	return queries.NewListActivitiesQueryHandler(c.activities)
}

func (c *CompositionRoot) CreateGetRecommendationsQueryHandler() queries.GetRecommendationsQueryHandler {
	return queries.NewGetRecommendationsQueryHandler(c.recommendations)
}

func (c *CompositionRoot) CreateListRetailersQueryHandler() queries.ListRetailersQueryHandler {
	return queries.NewListRetailersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRetailerProfileQueryHandler() queries.GetRetailerProfileQueryHandler {
	return queries.NewGetRetailerProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRetailerCategoriesQueryHandler() queries.ListRetailerCategoriesQueryHandler {
	return queries.NewListRetailerCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:  c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrderDetail:     c.CreateGetOrderDetailQueryHandler(),
		GetOrderStatistics: c.CreateGetOrderStatisticsQueryHandler(),
		GetDashboardStats:  c.CreateGetDashboardStatsQueryHandler(),
		GetRecentOrders:    c.CreateGetRecentOrdersQueryHandler(),
		ListActivities:     c.CreateListActivitiesQueryHandler(),
		GetRecommendations: c.CreateGetRecommendationsQueryHandler(),

		ListRetailers:          c.CreateListRetailersQueryHandler(),
		GetRetailerProfile:     c.CreateGetRetailerProfileQueryHandler(),
		ListRetailerCategories: c.CreateListRetailerCategoriesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshRetailerStatsCommandHandler(),
		c.config.RetailerStatsSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
