package queries

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrGetRiderOrderHistoryQueryIsNotConstructed = errors.New(
	"GetRiderOrderHistoryQuery must be created via NewGetRiderOrderHistoryQuery constructor",
)

// GetRiderOrderHistoryQuery retrieves the orders a rider has delivered.
type GetRiderOrderHistoryQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRiderOrderHistoryQuery creates a query for a rider's completed orders.
func NewGetRiderOrderHistoryQuery(riderID kernel.UUID) (GetRiderOrderHistoryQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetRiderOrderHistoryQuery{}, err
	}

	return GetRiderOrderHistoryQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderOrderHistoryQueryIsNotConstructed)
}

// RiderID returns the rider whose history is requested.
func (q GetRiderOrderHistoryQuery) RiderID() kernel.UUID {
	return q.riderID
}
