package queries

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrGetRiderAcceptedOrdersQueryIsNotConstructed = errors.New(
	"GetRiderAcceptedOrdersQuery must be created via NewGetRiderAcceptedOrdersQuery constructor",
)

// GetRiderAcceptedOrdersQuery retrieves the orders a rider currently holds.
type GetRiderAcceptedOrdersQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderAcceptedOrdersQuery creates a query for a rider's active orders.
func NewGetRiderAcceptedOrdersQuery(riderID kernel.UUID) (GetRiderAcceptedOrdersQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderAcceptedOrdersQuery{}, err
	}

	return GetRiderAcceptedOrdersQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderAcceptedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderAcceptedOrdersQueryIsNotConstructed)
}

// RiderID returns the rider whose active orders are requested.
func (q GetRiderAcceptedOrdersQuery) RiderID() kernel.UUID {
	return q.riderID
}
