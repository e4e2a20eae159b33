package commands

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a rider's attempt to claim a pending order.
// The acting identity's role is carried along so the handler can enforce
// rider capability.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	riderID   kernel.UUID
	riderRole string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a validated accept command.
func NewAcceptOrderCommand(orderID, riderID kernel.UUID, riderRole string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
		cmd.setRiderRole(riderRole),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the claiming identity.
func (c AcceptOrderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// RiderRole returns the acting identity's role as asserted by the auth provider.
func (c AcceptOrderCommand) RiderRole() string {
	return c.riderRole
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	c.riderID = riderID
	return nil
}

func (c *AcceptOrderCommand) setRiderRole(riderRole string) error {
	if riderRole == "" {
		return errs.NewValueIsRequiredError("role")
	}
	c.riderRole = riderRole
	return nil
}
