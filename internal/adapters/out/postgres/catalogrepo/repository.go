package catalogrepo

import (
	"context"
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// CountAvailableDrugLinks counts how many of the given drugs the pharmacy
// offers as available. Duplicate ids in the input count once.
func (r *GormCatalogRepository) CountAvailableDrugLinks(
	ctx context.Context, pharmacyID kernel.UUID, drugIDs []kernel.UUID,
) (int64, error) {
	if len(drugIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PharmacyDrugDTO{}).
		Where("pharmacy_id = ? AND drug_id IN ? AND is_available", pharmacyID.Bytes(), rawIDs(drugIDs)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountAvailableServiceLinks counts how many of the given services the
// pharmacy offers as available.
func (r *GormCatalogRepository) CountAvailableServiceLinks(
	ctx context.Context, pharmacyID kernel.UUID, serviceIDs []kernel.UUID,
) (int64, error) {
	if len(serviceIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PharmacyServiceDTO{}).
		Where("pharmacy_id = ? AND service_id IN ? AND is_available", pharmacyID.Bytes(), rawIDs(serviceIDs)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ServicePrice resolves the pharmacy-specific price of a service from its
// available offering link. Returns errs.ObjectNotFoundError when the
// pharmacy has no available link for the service.
func (r *GormCatalogRepository) ServicePrice(
	ctx context.Context, pharmacyID, serviceID kernel.UUID,
) (int64, error) {
	var dto PharmacyServiceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "pharmacy_id = ? AND service_id = ? AND is_available",
			pharmacyID.Bytes(), serviceID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("pharmacyService", serviceID.String())
		}
		return 0, err
	}

	return dto.Price, nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
