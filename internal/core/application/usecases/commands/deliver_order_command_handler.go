package commands

import (
	"context"

	"pharmadelivery/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler performs the accepted -> delivered transition.
// Guard order matters: a missing order is reported first, then a rider who
// does not hold the order (order.ErrNotOrderOwner), and only then a repeated
// delivery (order.ErrAlreadyDelivered) — a mismatched rider is told about
// the ownership problem even when the order is already delivered.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	deliveredOrder, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = deliveredOrder.Deliver(cmd.RiderID()); err != nil {
		return err
	}

	done, err := repo.MarkDelivered(ctx, cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return err
	}
	if !done {
		return order.ErrAlreadyDelivered
	}

	return uow.Commit(ctx)
}
