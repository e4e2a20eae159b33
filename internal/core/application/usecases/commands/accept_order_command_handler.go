package commands

import (
	"context"
	"errors"

	"pharmadelivery/internal/core/domain/model/order"
)

// ErrRiderCapabilityRequired is returned when the acting identity lacks
// rider capability for a lifecycle transition.
var ErrRiderCapabilityRequired = errors.New("only riders can accept orders")

// AcceptOrderCommandHandler performs the pending -> accepted transition,
// assigning the claiming rider. Guard order matters for the error a caller
// sees: a missing order is reported first, then a non-pending status, then
// a missing rider capability.
//
// The actual claim is a conditional update guarded by the pending status, so
// two riders racing for the same order can never both succeed — the loser of
// the race gets order.ErrAlreadyAccepted.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
// Returns errs.ObjectNotFoundError, order.ErrAlreadyAccepted, or
// ErrRiderCapabilityRequired on guard failure.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	claimedOrder, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = claimedOrder.Accept(cmd.RiderID()); err != nil {
		return err
	}

	if cmd.RiderRole() != RoleRider {
		return ErrRiderCapabilityRequired
	}

	claimed, err := repo.AcceptPending(ctx, cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return err
	}
	if !claimed {
		// Another rider won the race between our read and the guarded update.
		return order.ErrAlreadyAccepted
	}

	return uow.Commit(ctx)
}
