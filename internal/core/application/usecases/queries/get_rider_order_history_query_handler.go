package queries

import (
	"context"

	"pharmadelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRiderOrderHistoryQueryHandler retrieves the orders a rider has
// delivered, most recently completed first.
type GetRiderOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderOrderHistoryQueryHandler creates a handler for a rider's
// delivery history.
func NewGetRiderOrderHistoryQueryHandler(db *gorm.DB) GetRiderOrderHistoryQueryHandler {
	return GetRiderOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. History is sorted by last update descending,
// which for delivered orders is the delivery time.
func (h GetRiderOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetRiderOrderHistoryQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchOrders(ctx, h.db, `
		SELECT `+orderColumns+`
		FROM med_orders
		WHERE rider_id = ? AND status = ?
		ORDER BY updated_at DESC
	`, query.RiderID().Bytes(), order.Delivered.String())
}
