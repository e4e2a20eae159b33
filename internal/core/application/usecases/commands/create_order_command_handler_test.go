package commands_test

import (
	"errors"
	"testing"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/domain/services"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pharmacyID := kernel.NewUUID()
	drugID := kernel.NewUUID()
	serviceID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), pharmacyID,
		validDelivery(),
		[]kernel.UUID{drugID},
		[]commands.ServiceRequest{{ServiceID: serviceID}},
		nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalog).Once()
	catalog.On("CountAvailableDrugLinks", ctx, pharmacyID, []kernel.UUID{drugID}).
		Return(int64(1), nil).Once()
	catalog.On("CountAvailableServiceLinks", ctx, pharmacyID, []kernel.UUID{serviceID}).
		Return(int64(1), nil).Once()
	catalog.On("ServicePrice", ctx, pharmacyID, serviceID).Return(int64(15000), nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			assert.Equal(t, order.Pending, created.Status())
			assert.Nil(t, created.Rider())
			require.Len(t, created.Services(), 1)
			assert.Equal(t, int64(15000), created.Services()[0].Price())
			assert.Equal(t, 1, created.Services()[0].Quantity())
			require.Len(t, created.DrugIDs(), 1)
			assert.True(t, created.DrugIDs()[0].IsEqual(drugID))
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableOffering(t *testing.T) {
	ctx := t.Context()
	pharmacyID := kernel.NewUUID()
	drugID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), pharmacyID,
		validDelivery(), []kernel.UUID{drugID}, nil, nil)
	require.NoError(t, err)

	catalog := new(MockCatalogRepository)
	catalog.On("CountAvailableDrugLinks", ctx, pharmacyID, []kernel.UUID{drugID}).
		Return(int64(0), nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalog).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrOfferingUnavailable)
	repo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_MissingPriceLinkKeepsZero(t *testing.T) {
	ctx := t.Context()
	pharmacyID := kernel.NewUUID()
	serviceID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), pharmacyID,
		validDelivery(), nil,
		[]commands.ServiceRequest{{ServiceID: serviceID, Quantity: 3}},
		nil)
	require.NoError(t, err)

	catalog := new(MockCatalogRepository)
	catalog.On("CountAvailableServiceLinks", ctx, pharmacyID, []kernel.UUID{serviceID}).
		Return(int64(1), nil).Once()
	// The link vanished between validation and pricing.
	catalog.On("ServicePrice", ctx, pharmacyID, serviceID).
		Return(int64(0), errs.NewObjectNotFoundError("pharmacyService", serviceID.String())).Once()

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*order.Order)
			require.Len(t, created.Services(), 1)
			assert.Equal(t, int64(0), created.Services()[0].Price())
			assert.Equal(t, 3, created.Services()[0].Quantity())
		}).
		Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalog).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validDelivery(), nil, nil, nil)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	pharmacyID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), pharmacyID,
		validDelivery(), nil, nil, nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	catalog := new(MockCatalogRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CatalogRepository").Return(catalog).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("add error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit")
}
