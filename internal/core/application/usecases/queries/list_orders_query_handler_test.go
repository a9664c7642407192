package queries_test

import (
	"context"
	"time"

	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
)

func (suite *ReadModelsTestSuite) TestListOrders_DefaultSortNewestFirst() {
	userID := kernel.NewUUID()
	techCorp := suite.seedRetailer("TechCorp Solutions", retailer.Electronics, "San Francisco", "CA")
	base := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	oldest := suite.seedOrder(userID, techCorp, base, order.Pending, seededLine{2, "60"})
	middle := suite.seedOrder(userID, techCorp, base.Add(time.Hour), order.Shipped, seededLine{1, "1000"})
	newest := suite.seedOrder(userID, techCorp, base.Add(2*time.Hour), order.Pending,
		seededLine{1, "5"}, seededLine{3, "2"})
	suite.deactivate(suite.seedOrder(userID, techCorp, base.Add(3*time.Hour), order.Pending, seededLine{1, "1"}))
	suite.seedOrder(kernel.NewUUID(), techCorp, base, order.Pending, seededLine{1, "1"})

	query, err := queries.NewListOrdersQuery(userID, "", 1, 10, "", "")
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Orders, 3)
	suite.Equal(newest.Number().String(), result.Orders[0].ID)
	suite.Equal(middle.Number().String(), result.Orders[1].ID)
	suite.Equal(oldest.Number().String(), result.Orders[2].ID)
	suite.Equal(queries.Pagination{Current: 1, Pages: 1, Total: 3, Limit: 10}, result.Pagination)

	first := result.Orders[0]
	suite.Equal(2, first.ItemCount)
	suite.Equal("pending", first.Status)
	suite.Equal("2025-02-01", first.Date)
	suite.Equal("TechCorp Solutions", first.Supplier)
	suite.Equal(techCorp.ID().String(), first.Retailer.ID)
	suite.Equal("Electronics", first.Retailer.Category)
	suite.Equal("San Francisco, CA", first.Retailer.Location)

	suite.Equal("$1,080", result.Orders[1].Amount)
	suite.Equal("$129.6", result.Orders[2].Amount)
}

func (suite *ReadModelsTestSuite) TestListOrders_StatusFilter() {
	userID := kernel.NewUUID()
	seller := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	now := time.Now().UTC()
	suite.seedOrder(userID, seller, now.Add(-time.Hour), order.Pending, seededLine{1, "50"})
	shipped := suite.seedOrder(userID, seller, now, order.Shipped, seededLine{1, "50"})

	handler := queries.NewListOrdersQueryHandler(suite.db)

	query, err := queries.NewListOrdersQuery(userID, "shipped", 1, 10, "", "")
	suite.Require().NoError(err)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(shipped.Number().String(), result.Orders[0].ID)

	query, err = queries.NewListOrdersQuery(userID, queries.StatusAll, 1, 10, "", "")
	suite.Require().NoError(err)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
}

func (suite *ReadModelsTestSuite) TestListOrders_PaginationAndSortByTotal() {
	userID := kernel.NewUUID()
	seller := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	now := time.Now().UTC()
	for i, price := range []string{"30", "10", "50", "20", "40"} {
		suite.seedOrder(userID, seller, now.Add(time.Duration(i)*time.Minute), order.Pending, seededLine{1, price})
	}

	query, err := queries.NewListOrdersQuery(userID, "", 2, 2, "total", "asc")
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(queries.Pagination{Current: 2, Pages: 3, Total: 5, Limit: 2}, result.Pagination)
	suite.Require().Len(result.Orders, 2)
	// 30 -> 30 + 2.4 + 10, 40 -> 40 + 3.2 + 10
	suite.Equal("$42.4", result.Orders[0].Amount)
	suite.Equal("$53.2", result.Orders[1].Amount)
}

func (suite *ReadModelsTestSuite) TestListOrders_PageBeyondEnd_ReturnsEmpty() {
	userID := kernel.NewUUID()
	seller := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	suite.seedOrder(userID, seller, time.Now().UTC(), order.Pending, seededLine{1, "50"})

	query, err := queries.NewListOrdersQuery(userID, "", 3, 10, "", "")
	suite.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
	suite.Equal(int64(1), result.Pagination.Total)
	suite.Equal(1, result.Pagination.Pages)
}
