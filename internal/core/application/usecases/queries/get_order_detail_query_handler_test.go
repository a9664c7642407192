package queries_test

import (
	"context"
	"time"

	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
	"b2better/internal/pkg/errs"
)

func (suite *ReadModelsTestSuite) TestGetOrderDetail_ReturnsFullView() {
	userID := kernel.NewUUID()
	seller := suite.seedRetailer("TechCorp Solutions", retailer.Electronics, "San Francisco", "CA")
	placedAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	placed := suite.seedOrder(userID, seller, placedAt, order.Shipped, seededLine{2, "60"}, seededLine{1, "5.5"})

	query, err := queries.NewGetOrderDetailQuery(userID, placed.Number().String())
	suite.Require().NoError(err)

	detail, err := queries.NewGetOrderDetailQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(placed.Number().String(), detail.OrderNumber)
	suite.Equal("shipped", detail.Status)
	suite.True(placedAt.Equal(detail.CreatedAt))

	suite.Require().Len(detail.Items, 2)
	suite.Equal("Product A", detail.Items[0].Product.Name)
	suite.Equal(2, detail.Items[0].Quantity)
	suite.InDelta(60.0, detail.Items[0].UnitPrice, 1e-9)
	suite.InDelta(120.0, detail.Items[0].TotalPrice, 1e-9)
	suite.Equal("Product B", detail.Items[1].Product.Name)

	suite.Equal(queries.PricingView{Subtotal: 125.5, Tax: 10.04, Shipping: 0, Discount: 0, Total: 135.54}, detail.Pricing)
	suite.Equal("Austin", detail.Shipping.Address.City)
	suite.Equal(order.DefaultShippingMethod, detail.Shipping.Method)
	suite.Equal("credit_card", detail.Payment.Method)
	suite.Equal("pending", detail.Payment.Status)
	suite.Equal("ring the bell", detail.Notes.Customer)

	suite.Require().Len(detail.Timeline, 2)
	suite.Equal("pending", detail.Timeline[0].Status)
	suite.Equal(order.SystemActor, detail.Timeline[0].UpdatedBy)
	suite.Equal("shipped", detail.Timeline[1].Status)
	suite.Equal("Jane Buyer", detail.Timeline[1].UpdatedBy)

	suite.Equal(queries.RetailerContacts{
		ID:       seller.ID().String(),
		Name:     "TechCorp Solutions",
		Email:    "sales@example.test",
		Phone:    "+15555550100",
		Location: "San Francisco, CA",
	}, detail.Retailer)
}

func (suite *ReadModelsTestSuite) TestGetOrderDetail_HiddenOrders_ReturnNotFound() {
	owner := kernel.NewUUID()
	seller := suite.seedRetailer("PaperCo", retailer.OfficeSupplies, "Austin", "TX")
	visible := suite.seedOrder(owner, seller, time.Now().UTC(), order.Pending, seededLine{1, "50"})
	inactive := suite.seedOrder(owner, seller, time.Now().UTC(), order.Pending, seededLine{1, "50"})
	suite.deactivate(inactive)

	handler := queries.NewGetOrderDetailQueryHandler(suite.db)

	testCases := []struct {
		name   string
		userID kernel.UUID
		number string
	}{
		{name: "another user's order", userID: kernel.NewUUID(), number: visible.Number().String()},
		{name: "inactive order", userID: owner, number: inactive.Number().String()},
		{name: "unknown number", userID: owner, number: "ORD-000000000"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewGetOrderDetailQuery(tc.userID, tc.number)
			suite.Require().NoError(err)

			_, err = handler.Handle(context.Background(), query)

			suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
		})
	}
}
