package order

import (
	"fmt"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
)

// ServiceLine is an order-owned line item for a pharmacy service.
// It snapshots the pharmacy's service price at order-creation time; the
// price is never taken from the client request. A price of zero is the
// tolerated fallback when the pharmacy-service link disappeared between
// availability validation and pricing.
type ServiceLine struct {
	serviceID kernel.UUID
	quantity  int
	price     int64
}

// NewServiceLine creates a service line. Quantity must be at least 1
// (callers default unspecified quantities to 1 before reaching the domain)
// and price must not be negative.
func NewServiceLine(serviceID kernel.UUID, quantity int, price int64) (ServiceLine, error) {
	if err := serviceID.Validate(); err != nil {
		return ServiceLine{}, err
	}

	if quantity < 1 {
		return ServiceLine{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if price < 0 {
		return ServiceLine{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}

	return ServiceLine{
		serviceID: serviceID,
		quantity:  quantity,
		price:     price,
	}, nil
}

// ServiceID returns the referenced catalog service id.
func (l ServiceLine) ServiceID() kernel.UUID {
	return l.serviceID
}

// Quantity returns how many units of the service were ordered.
func (l ServiceLine) Quantity() int {
	return l.quantity
}

// Price returns the per-line price snapshotted at creation time.
func (l ServiceLine) Price() int64 {
	return l.price
}
