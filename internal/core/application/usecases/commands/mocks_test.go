package commands_test

import (
	"context"
	"testing"

	"b2better/internal/core/application/usecases/commands"
	"b2better/internal/core/domain/model/activity"
	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/domain/model/retailer"
	"b2better/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByNumber(
	ctx context.Context,
	number order.Number,
	userID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, number, userID)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) SummarizeByRetailer(ctx context.Context) (map[kernel.UUID]retailer.Stats, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(map[kernel.UUID]retailer.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRetailerRepository struct{ mock.Mock }

func (m *MockRetailerRepository) Add(ctx context.Context, r *retailer.Retailer) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRetailerRepository) Update(ctx context.Context, r *retailer.Retailer) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRetailerRepository) Get(ctx context.Context, id kernel.UUID) (*retailer.Retailer, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*retailer.Retailer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRetailerRepository) GetAll(ctx context.Context) ([]*retailer.Retailer, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]*retailer.Retailer), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Add(ctx context.Context, a *activity.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActivityRepository) ListForUser(
	ctx context.Context,
	filter ports.ActivityFilter,
) ([]*activity.Activity, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*activity.Activity), args.Get(1).(int64), args.Error(2)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockTx }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RetailerRepository() ports.RetailerRepository {
	args := m.Called()
	return args.Get(0).(ports.RetailerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockActivityRecorder struct{ mock.Mock }

func (m *MockActivityRecorder) Record(ctx context.Context, cmd commands.RecordActivityCommand) {
	m.Called(ctx, cmd)
}

func newRetailer(t *testing.T) *retailer.Retailer {
	t.Helper()
	r, err := retailer.NewRetailer(
		kernel.NewUUID(),
		"TechCorp Solutions",
		"Enterprise hardware",
		retailer.Electronics,
		retailer.Location{Address: "500 Market St", City: "San Francisco", State: "CA", Country: "USA", ZipCode: "94105"},
		retailer.Contact{Email: "sales@techcorp.example", Phone: "+1-555-0100"},
		[]string{"laptops"},
	)
	require.NoError(t, err)
	return r
}

func validAddress() commands.ShippingAddressInput {
	return commands.ShippingAddressInput{
		Name:    "Jane Buyer",
		Company: "Acme",
		Street:  "1 Main St",
		City:    "Austin",
		State:   "TX",
		ZipCode: "73301",
		Country: "USA",
	}
}

func activityOfType(activityType activity.Type) any {
	return mock.MatchedBy(func(cmd commands.RecordActivityCommand) bool {
		return cmd.Type() == activityType
	})
}
