package commands

import (
	"context"
	"errors"

	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/core/domain/services"
	"pharmadelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler is the order factory: it validates offering
// availability against the pharmacy's catalog and persists the order header,
// its drug references and its priced service lines in one transaction.
//
// Service line prices are resolved server-side from the pharmacy-service
// link as read at creation time. When a link vanished between availability
// validation and pricing (a concurrent deactivation), the line keeps a zero
// price rather than failing the order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	validator  services.AvailabilityValidator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory spanning order writes and catalog reads.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewAvailabilityValidator(),
	}
}

// Handle processes the order creation command.
// Returns an UnavailableOfferingError when any requested drug or service is
// not currently offered by the pharmacy; nothing is persisted in that case.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	catalog := uow.CatalogRepository()

	err := h.validator.Validate(ctx, catalog, cmd.PharmacyID(), cmd.DrugIDs(), cmd.ServiceIDs())
	if err != nil {
		return err
	}

	lines := make([]order.ServiceLine, 0, len(cmd.Services()))
	for _, req := range cmd.Services() {
		price, priceErr := catalog.ServicePrice(ctx, cmd.PharmacyID(), req.ServiceID)
		if priceErr != nil {
			if !errors.Is(priceErr, errs.ErrObjectNotFound) {
				return priceErr
			}
			price = 0
		}

		line, lineErr := order.NewServiceLine(req.ServiceID, req.Quantity, price)
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.PharmacyID(),
		cmd.Delivery(),
		cmd.DrugIDs(),
		lines,
		cmd.PaymentID(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
