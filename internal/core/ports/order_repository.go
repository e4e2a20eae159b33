package ports

import (
	"context"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate including its drug references and
	// service lines. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AcceptPending atomically claims a pending order for a rider with a
	// conditional update guarded by the pending status. Returns false when
	// the order was no longer pending, so that two racing riders can never
	// both succeed.
	AcceptPending(ctx context.Context, orderID kernel.UUID, riderID kernel.UUID) (bool, error)

	// MarkDelivered atomically completes an accepted order, guarded by both
	// the rider assignment and the accepted status. Returns false when the
	// guarded update matched no row.
	MarkDelivered(ctx context.Context, orderID kernel.UUID, riderID kernel.UUID) (bool, error)
}
