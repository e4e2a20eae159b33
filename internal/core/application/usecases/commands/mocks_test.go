package commands_test

import (
	"context"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AcceptPending(ctx context.Context, orderID, riderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, riderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) MarkDelivered(ctx context.Context, orderID, riderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, riderID)
	return args.Bool(0), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) CountAvailableDrugLinks(
	ctx context.Context, pharmacyID kernel.UUID, drugIDs []kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, pharmacyID, drugIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) CountAvailableServiceLinks(
	ctx context.Context, pharmacyID kernel.UUID, serviceIDs []kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, pharmacyID, serviceIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ServicePrice(
	ctx context.Context, pharmacyID, serviceID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, pharmacyID, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies both commands.OrderUoW and commands.UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
