package queries_test

import (
	"context"
	"time"

	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
)

func (suite *ReadModelsTestSuite) TestGetOrderStatistics_Week() {
	userID := kernel.NewUUID()
	techCorp := suite.seedRetailer("TechCorp Solutions", retailer.Electronics, "San Francisco", "CA")
	paperCo := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	recent := time.Now().UTC().Add(-time.Minute)

	suite.seedOrder(userID, techCorp, recent, order.Confirmed, seededLine{2, "60"}) // 129.6
	suite.seedOrder(userID, paperCo, recent, order.Pending, seededLine{1, "50"})    // 64
	suite.seedOrder(userID, techCorp, recent, order.Pending, seededLine{1, "1000"}) // 1080
	suite.seedOrder(userID, techCorp, recent.Add(-30*24*time.Hour), order.Pending, seededLine{1, "50"})
	suite.deactivate(suite.seedOrder(userID, paperCo, recent, order.Pending, seededLine{1, "50"}))
	suite.seedOrder(kernel.NewUUID(), paperCo, recent, order.Pending, seededLine{1, "50"})

	query, err := queries.NewGetOrderStatisticsQuery(userID, "week")
	suite.Require().NoError(err)

	stats, err := queries.NewGetOrderStatisticsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(3, stats.TotalOrders)
	suite.InDelta(1273.6, stats.TotalSpent, 1e-9)
	suite.InDelta(424.53, stats.AverageOrderValue, 1e-9)
	suite.Equal(map[string]int{"pending": 2, "confirmed": 1}, stats.StatusBreakdown)
	suite.Equal([]queries.TopRetailer{
		{Name: "TechCorp Solutions", OrderCount: 2, TotalSpent: 1209.6},
		{Name: "PaperCo", OrderCount: 1, TotalSpent: 64},
	}, stats.TopRetailers)
}

func (suite *ReadModelsTestSuite) TestGetOrderStatistics_NoOrders() {
	query, err := queries.NewGetOrderStatisticsQuery(kernel.NewUUID(), "year")
	suite.Require().NoError(err)

	stats, err := queries.NewGetOrderStatisticsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Zero(stats.TotalOrders)
	suite.Zero(stats.TotalSpent)
	suite.Zero(stats.AverageOrderValue)
	suite.Empty(stats.StatusBreakdown)
	suite.NotNil(stats.TopRetailers)
	suite.Empty(stats.TopRetailers)
}
