package commands

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ServiceRequest is a requested pharmacy service with its quantity.
// The price is deliberately absent: it is resolved server-side from the
// pharmacy-service link when the order is created.
type ServiceRequest struct {
	ServiceID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a customer's request to place an order with
// a single pharmacy. Delivery details and totals are carried verbatim from
// the request.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	pharmacyID kernel.UUID
	delivery   order.Delivery
	drugIDs    []kernel.UUID
	services   []ServiceRequest
	paymentID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order-creation command.
// Unspecified service quantities default to 1; negative quantities are
// rejected. Zero drugs and zero services are allowed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	pharmacyID kernel.UUID,
	delivery order.Delivery,
	drugIDs []kernel.UUID,
	services []ServiceRequest,
	paymentID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPharmacyID(pharmacyID),
		cmd.setDelivery(delivery),
		cmd.setDrugIDs(drugIDs),
		cmd.setServices(services),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the order being created.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the placing customer's identity.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PharmacyID returns the fulfilling pharmacy.
func (c CreateOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

// Delivery returns the caller-supplied delivery details.
func (c CreateOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

// DrugIDs returns the requested catalog drug references.
func (c CreateOrderCommand) DrugIDs() []kernel.UUID {
	return c.drugIDs
}

// Services returns the requested service lines.
func (c CreateOrderCommand) Services() []ServiceRequest {
	return c.services
}

// ServiceIDs returns just the requested service ids, for availability checks.
func (c CreateOrderCommand) ServiceIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.services))
	for i, s := range c.services {
		ids[i] = s.ServiceID
	}
	return ids
}

// PaymentID returns the optional referenced payment record id.
func (c CreateOrderCommand) PaymentID() *kernel.UUID {
	return c.paymentID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPharmacyID(pharmacyID kernel.UUID) error {
	if err := pharmacyID.Validate(); err != nil {
		return err
	}
	c.pharmacyID = pharmacyID
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery order.Delivery) error {
	if delivery.Stage == "" {
		return errs.NewValueIsRequiredError("stage")
	}
	if delivery.Location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if delivery.Eta == "" {
		return errs.NewValueIsRequiredError("eta")
	}
	if delivery.TotalAmount < 0 {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	if delivery.DeliveryFee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}
	c.delivery = delivery
	return nil
}

func (c *CreateOrderCommand) setDrugIDs(drugIDs []kernel.UUID) error {
	for _, id := range drugIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.drugIDs = drugIDs
	return nil
}

func (c *CreateOrderCommand) setServices(services []ServiceRequest) error {
	validated := make([]ServiceRequest, len(services))
	for i, s := range services {
		if err := s.ServiceID.Validate(); err != nil {
			return err
		}
		if s.Quantity < 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
		if s.Quantity == 0 {
			s.Quantity = 1
		}
		validated[i] = s
	}
	c.services = validated
	return nil
}

func (c *CreateOrderCommand) setPaymentID(paymentID *kernel.UUID) error {
	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return err
		}
	}
	c.paymentID = paymentID
	return nil
}
