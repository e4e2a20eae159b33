package queries

import (
	"context"

	"pharmadelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves all orders awaiting a rider claim,
// newest first.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for the pending pool.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns every pending order regardless of
// pharmacy or location, sorted by creation time descending.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM med_orders
		WHERE status = ?
		ORDER BY created_at DESC
	`, order.Pending.String())
}
