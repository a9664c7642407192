package queries_test

import (
	"context"
	"time"

	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
)

func (suite *ReadModelsTestSuite) TestGetRecentOrders_NewestActiveFirst() {
	userID := kernel.NewUUID()
	seller := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	base := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)

	suite.seedOrder(userID, seller, base, order.Pending, seededLine{1, "50"})
	second := suite.seedOrder(userID, seller, base.Add(time.Hour), order.Delivered, seededLine{1, "1000"})
	third := suite.seedOrder(userID, seller, base.Add(2*time.Hour), order.Pending, seededLine{2, "60"})
	suite.deactivate(suite.seedOrder(userID, seller, base.Add(3*time.Hour), order.Pending, seededLine{1, "50"}))

	query, err := queries.NewGetRecentOrdersQuery(userID, 2)
	suite.Require().NoError(err)

	recent, err := queries.NewGetRecentOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal([]queries.RecentOrder{
		{ID: third.Number().String(), Supplier: "PaperCo", Amount: "$129.6", Status: "pending", Date: "2025-04-02"},
		{ID: second.Number().String(), Supplier: "PaperCo", Amount: "$1,080", Status: "delivered", Date: "2025-04-02"},
	}, recent)
}
