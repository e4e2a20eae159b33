package orderrepo

import (
	"context"
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"
	"pharmadelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its drug references and service lines.
// Referenced drug rows must already exist; only the join rows are written.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Omit("Drugs.*").Create(&dto).Error
}

// Get retrieves an order by ID, hydrated with drug references and service
// lines. Returns errs.ObjectNotFoundError when no row exists.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Drugs").
		Preload("Services").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AcceptPending atomically claims a pending order for a rider. The update is
// guarded by the pending status, so of any number of concurrent claims
// exactly one succeeds. Returns false when the guard missed, meaning the
// order was no longer pending.
func (r *GormOrderRepository) AcceptPending(
	ctx context.Context, orderID, riderID kernel.UUID,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", orderID.Bytes(), order.Pending.String()).
		Updates(map[string]any{
			"status":   order.Accepted.String(),
			"rider_id": riderID.Bytes(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkDelivered atomically completes an order held by the given rider. The
// update is guarded by the accepted status and the rider assignment. Returns
// false when the guard missed.
func (r *GormOrderRepository) MarkDelivered(
	ctx context.Context, orderID, riderID kernel.UUID,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND rider_id = ? AND status = ?",
			orderID.Bytes(), riderID.Bytes(), order.Accepted.String()).
		Update("status", order.Delivered.String())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
