package queries

import (
	"context"

	"pharmadelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRiderAcceptedOrdersQueryHandler retrieves the orders a rider has
// claimed but not yet delivered, newest first.
type GetRiderAcceptedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderAcceptedOrdersQueryHandler creates a handler for a rider's
// active workload.
func NewGetRiderAcceptedOrdersQueryHandler(db *gorm.DB) GetRiderAcceptedOrdersQueryHandler {
	return GetRiderAcceptedOrdersQueryHandler{db: db}
}

// Handle executes the query, sorted by creation time descending.
func (h GetRiderAcceptedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRiderAcceptedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM med_orders
		WHERE rider_id = ? AND status = ?
		ORDER BY created_at DESC
	`, query.RiderID().Bytes(), order.Accepted.String())
}
