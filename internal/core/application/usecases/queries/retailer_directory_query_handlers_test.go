package queries_test

import (
	"context"
	"time"

	"b2better/internal/core/application/usecases/queries"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/retailer"
	"b2better/internal/pkg/errs"
)

type directoryEntry struct {
	name        string
	description string
	category    retailer.Category
	specialties []string
	verified    bool
	active      bool
	totalOrders int
	createdAt   time.Time
}

func (suite *ReadModelsTestSuite) seedDirectory(entries ...directoryEntry) map[string]*retailer.Retailer {
	seeded := make(map[string]*retailer.Retailer, len(entries))
	for _, entry := range entries {
		r, err := retailer.NewRetailer(
			kernel.NewUUID(), entry.name, entry.description, entry.category,
			retailer.Location{Address: "9 Dock Rd", City: "Portland", State: "OR", Country: "USA", ZipCode: "97201"},
			retailer.Contact{Email: "hello@example.test", Phone: "+15555550111", Website: "https://example.test"},
			entry.specialties,
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.retailerRepo.Add(context.Background(), r))

		err = suite.db.Exec(
			"UPDATE retailers SET verified = ?, is_active = ?, stats_total_orders = ?, created_at = ? WHERE id = ?",
			entry.verified, entry.active, entry.totalOrders, entry.createdAt, r.ID().Bytes(),
		).Error
		suite.Require().NoError(err)
		seeded[entry.name] = r
	}
	return seeded
}

func (suite *ReadModelsTestSuite) listRetailers(category, search string, verifiedOnly bool, sortBy string, page, limit int) queries.ListRetailersQueryResponse {
	query, err := queries.NewListRetailersQuery(category, search, verifiedOnly, sortBy, page, limit)
	suite.Require().NoError(err)

	response, err := queries.NewListRetailersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	return response
}

func listingNames(listings []queries.RetailerListing) []string {
	names := make([]string, 0, len(listings))
	for _, l := range listings {
		names = append(names, l.Name)
	}
	return names
}

func (suite *ReadModelsTestSuite) seedSampleDirectory() map[string]*retailer.Retailer {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return suite.seedDirectory(
		directoryEntry{name: "VoltHub", description: "Chargers and cables", category: retailer.Electronics,
			specialties: []string{"laptops"}, verified: true, active: true, totalOrders: 40, createdAt: base},
		directoryEntry{name: "PaperCo", description: "Office paper at 100% recycled", category: retailer.OfficeSupplies,
			verified: false, active: true, totalOrders: 75, createdAt: base.Add(time.Hour)},
		directoryEntry{name: "GreenLeaf", description: "Compostable packaging", category: retailer.Sustainability,
			verified: true, active: true, totalOrders: 5, createdAt: base.Add(2 * time.Hour)},
		directoryEntry{name: "CircuitWorks", description: "Industrial sensors", category: retailer.Electronics,
			verified: false, active: true, totalOrders: 40, createdAt: base.Add(3 * time.Hour)},
		directoryEntry{name: "Shuttered", description: "Closed electronics shop", category: retailer.Fashion,
			verified: true, active: false, totalOrders: 999, createdAt: base.Add(4 * time.Hour)},
	)
}

func (suite *ReadModelsTestSuite) TestListRetailers_RanksActiveRetailersByOrders() {
	suite.seedSampleDirectory()

	response := suite.listRetailers("", "", false, "", 1, queries.DefaultRetailersLimit)

	suite.Equal([]string{"PaperCo", "CircuitWorks", "VoltHub", "GreenLeaf"}, listingNames(response.Retailers))
	suite.Equal(queries.Pagination{Current: 1, Pages: 1, Total: 4, Limit: queries.DefaultRetailersLimit}, response.Pagination)

	volt := response.Retailers[2]
	suite.Equal("Electronics", volt.Category)
	suite.Equal("Portland, OR", volt.Location)
	suite.True(volt.Verified)
	suite.Equal([]string{"laptops"}, volt.Specialties)
	suite.Equal(40, volt.TotalOrders)
	suite.Equal([]string{}, response.Retailers[0].Specialties)
}

func (suite *ReadModelsTestSuite) TestListRetailers_Filters() {
	suite.seedSampleDirectory()

	suite.Run("category", func() {
		response := suite.listRetailers("Electronics", "", false, "name", 1, 10)
		suite.Equal([]string{"CircuitWorks", "VoltHub"}, listingNames(response.Retailers))
	})

	suite.Run("all category", func() {
		response := suite.listRetailers(queries.CategoryAll, "", false, "name", 1, 10)
		suite.Len(response.Retailers, 4)
	})

	suite.Run("search matches name or description case-insensitively", func() {
		response := suite.listRetailers("", "CABLES", false, "name", 1, 10)
		suite.Equal([]string{"VoltHub"}, listingNames(response.Retailers))

		response = suite.listRetailers("", "works", false, "name", 1, 10)
		suite.Equal([]string{"CircuitWorks"}, listingNames(response.Retailers))
	})

	suite.Run("search treats wildcards literally", func() {
		response := suite.listRetailers("", "100%", false, "name", 1, 10)
		suite.Equal([]string{"PaperCo"}, listingNames(response.Retailers))

		response = suite.listRetailers("", "%", false, "name", 1, 10)
		suite.Equal([]string{"PaperCo"}, listingNames(response.Retailers))
	})

	suite.Run("verified only", func() {
		response := suite.listRetailers("", "", true, "name", 1, 10)
		suite.Equal([]string{"GreenLeaf", "VoltHub"}, listingNames(response.Retailers))
	})

	suite.Run("inactive retailers never match", func() {
		response := suite.listRetailers("", "electronics", false, "name", 1, 10)
		suite.Empty(response.Retailers)
		suite.Equal(int64(0), response.Pagination.Total)
	})
}

func (suite *ReadModelsTestSuite) TestListRetailers_SortsAndPages() {
	suite.seedSampleDirectory()

	newest := suite.listRetailers("", "", false, "newest", 1, 10)
	suite.Equal([]string{"CircuitWorks", "GreenLeaf", "PaperCo", "VoltHub"}, listingNames(newest.Retailers))

	second := suite.listRetailers("", "", false, "name", 2, 3)
	suite.Equal([]string{"VoltHub"}, listingNames(second.Retailers))
	suite.Equal(queries.Pagination{Current: 2, Pages: 2, Total: 4, Limit: 3}, second.Pagination)
}

func (suite *ReadModelsTestSuite) TestGetRetailerProfile() {
	seeded := suite.seedSampleDirectory()
	volt := seeded["VoltHub"]

	query, err := queries.NewGetRetailerProfileQuery(volt.ID().String())
	suite.Require().NoError(err)

	profile, err := queries.NewGetRetailerProfileQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(queries.RetailerProfile{
		ID:          volt.ID().String(),
		Name:        "VoltHub",
		Description: "Chargers and cables",
		Category:    "Electronics",
		Specialties: []string{"laptops"},
		Location: queries.RetailerLocationView{
			Address: "9 Dock Rd", City: "Portland", State: "OR", Country: "USA", ZipCode: "97201",
		},
		Contact: queries.RetailerContactView{
			Email: "hello@example.test", Phone: "+15555550111", Website: "https://example.test",
		},
		Verified: true,
		Stats:    queries.RetailerStatsView{TotalOrders: 40},
	}, profile)
}

func (suite *ReadModelsTestSuite) TestGetRetailerProfile_HidesMissingAndInactive() {
	seeded := suite.seedSampleDirectory()
	handler := queries.NewGetRetailerProfileQueryHandler(suite.db)

	for _, id := range []string{seeded["Shuttered"].ID().String(), kernel.NewUUID().String()} {
		query, err := queries.NewGetRetailerProfileQuery(id)
		suite.Require().NoError(err)

		_, err = handler.Handle(context.Background(), query)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	}
}

func (suite *ReadModelsTestSuite) TestListRetailerCategories_ActiveOnlySorted() {
	suite.seedSampleDirectory()

	categories, err := queries.NewListRetailerCategoriesQueryHandler(suite.db).Handle(context.Background())
	suite.Require().NoError(err)

	suite.Equal([]string{"Electronics", "Office Supplies", "Sustainability"}, categories)
}

func (suite *ReadModelsTestSuite) TestListRetailerCategories_EmptyDirectory() {
	categories, err := queries.NewListRetailerCategoriesQueryHandler(suite.db).Handle(context.Background())
	suite.Require().NoError(err)

	suite.NotNil(categories)
	suite.Empty(categories)
}
