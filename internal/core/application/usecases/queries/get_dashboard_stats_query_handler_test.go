package queries_test

import (
	"context"
	"time"

	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
)

func (suite *ReadModelsTestSuite) TestGetDashboardStats_ComparesWithPreviousWeek() {
	userID := kernel.NewUUID()
	techCorp := suite.seedRetailer("TechCorp Solutions", retailer.Electronics, "San Francisco", "CA")
	paperCo := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	now := time.Now().UTC()
	current := now.Add(-time.Minute)
	previous := now.Add(-10 * 24 * time.Hour)

	suite.seedOrder(userID, techCorp, current, order.Pending, seededLine{2, "60"}) // 129.6
	suite.seedOrder(userID, techCorp, current, order.Pending, seededLine{1, "50"}) // 64
	suite.seedOrder(userID, paperCo, current, order.Pending, seededLine{1, "10"})  // 20.8
	suite.seedOrder(userID, techCorp, previous, order.Pending, seededLine{1, "50"})
	suite.deactivate(suite.seedOrder(userID, paperCo, previous, order.Pending, seededLine{1, "50"}))

	query, err := queries.NewGetDashboardStatsQuery(userID, "week")
	suite.Require().NoError(err)

	stats, err := queries.NewGetDashboardStatsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(queries.DashboardMetric{Value: "3", Change: "+200.0%", Trend: "up"}, stats.TotalOrders)
	suite.Equal(queries.DashboardMetric{Value: "$214.4", Change: "+235.0%", Trend: "up"}, stats.Revenue)
	suite.Equal(queries.DashboardMetric{Value: "2", Change: "+100.0%", Trend: "up"}, stats.ActiveSuppliers)
	suite.Equal(queries.DashboardMetric{Value: "150.0%", Change: "+50.0%", Trend: "up"}, stats.ConversionRate)
}

func (suite *ReadModelsTestSuite) TestGetDashboardStats_DecliningPeriod() {
	userID := kernel.NewUUID()
	seller := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	now := time.Now().UTC()
	previous := now.Add(-10 * 24 * time.Hour)

	suite.seedOrder(userID, seller, now.Add(-time.Minute), order.Pending, seededLine{1, "50"})
	suite.seedOrder(userID, seller, previous, order.Pending, seededLine{1, "50"})
	suite.seedOrder(userID, seller, previous, order.Pending, seededLine{1, "50"})

	query, err := queries.NewGetDashboardStatsQuery(userID, "week")
	suite.Require().NoError(err)

	stats, err := queries.NewGetDashboardStatsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(queries.DashboardMetric{Value: "1", Change: "-50.0%", Trend: "down"}, stats.TotalOrders)
	suite.Equal(queries.DashboardMetric{Value: "$64", Change: "-50.0%", Trend: "down"}, stats.Revenue)
	suite.Equal(queries.DashboardMetric{Value: "1", Change: "0.0%", Trend: "up"}, stats.ActiveSuppliers)
	suite.Equal(queries.DashboardMetric{Value: "100.0%", Change: "-50.0%", Trend: "down"}, stats.ConversionRate)
}

func (suite *ReadModelsTestSuite) TestGetDashboardStats_NoOrders() {
	query, err := queries.NewGetDashboardStatsQuery(kernel.NewUUID(), "")
	suite.Require().NoError(err)

	stats, err := queries.NewGetDashboardStatsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(queries.DashboardMetric{Value: "0", Change: "0%", Trend: "up"}, stats.TotalOrders)
	suite.Equal(queries.DashboardMetric{Value: "$0", Change: "0%", Trend: "up"}, stats.Revenue)
	suite.Equal(queries.DashboardMetric{Value: "0", Change: "0%", Trend: "up"}, stats.ActiveSuppliers)
	suite.Equal(queries.DashboardMetric{Value: "0%", Change: "0%", Trend: "up"}, stats.ConversionRate)
}
