package commands_test

import (
	"errors"
	"testing"
	"time"

	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		validDelivery(), nil, nil, nil)
	require.NoError(t, err)
	return o
}

func acceptedOrder(t *testing.T, riderID kernel.UUID) *order.Order {
	t.Helper()

	now := time.Now()
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		&riderID, order.Accepted, validDelivery(), nil, nil, nil, now, now)
	require.NoError(t, err)
	return o
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	riderID := kernel.NewUUID()
	claimed := pendingOrder(t)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), riderID, commands.RoleRider)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once()
	repo.On("AcceptPending", ctx, claimed.ID(), riderID).Return(true, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewAcceptOrderCommand(orderID, kernel.NewUUID(), commands.RoleRider)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	otherRider := kernel.NewUUID()
	taken := acceptedOrder(t, otherRider)

	// Already-accepted is reported before any role check, so even a
	// non-rider identity sees the status conflict here.
	cmd, err := commands.NewAcceptOrderCommand(taken.ID(), kernel.NewUUID(), "customer")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, taken.ID()).Return(taken, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAccepted)
	repo.AssertNotCalled(t, "AcceptPending")
}

func TestAcceptOrderCommandHandler_Handle_NotARider(t *testing.T) {
	ctx := t.Context()
	claimed := pendingOrder(t)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), kernel.NewUUID(), "customer")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRiderCapabilityRequired)
	repo.AssertNotCalled(t, "AcceptPending")
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptOrderCommandHandler_Handle_LostClaimRace(t *testing.T) {
	ctx := t.Context()
	riderID := kernel.NewUUID()
	claimed := pendingOrder(t)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), riderID, commands.RoleRider)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once()
	// Another rider's guarded update landed between our read and this one.
	repo.On("AcceptPending", ctx, claimed.ID(), riderID).Return(false, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAccepted)
	uow.AssertNotCalled(t, "Commit")
}

func TestAcceptOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewAcceptOrderCommand(kernel.NewUUID(), kernel.NewUUID(), commands.RoleRider)
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
}
