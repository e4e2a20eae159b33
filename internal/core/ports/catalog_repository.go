package ports

import (
	"context"

	"pharmadelivery/internal/core/domain/model/kernel"
)

// CatalogRepository defines read-only access to the pharmacy catalog:
// per-pharmacy offering links carrying an availability flag and a price.
// The catalog is never written through this port.
type CatalogRepository interface {
	// CountAvailableDrugLinks counts pharmacy-drug links for the pharmacy
	// whose drug id is in the given set and whose availability flag is true.
	CountAvailableDrugLinks(ctx context.Context, pharmacyID kernel.UUID, drugIDs []kernel.UUID) (int64, error)

	// CountAvailableServiceLinks is the service-side counterpart of
	// CountAvailableDrugLinks.
	CountAvailableServiceLinks(ctx context.Context, pharmacyID kernel.UUID, serviceIDs []kernel.UUID) (int64, error)

	// ServicePrice resolves the pharmacy's current price for a service via
	// the available pharmacy-service link. Returns an
	// errs.ObjectNotFoundError when no available link exists.
	ServicePrice(ctx context.Context, pharmacyID kernel.UUID, serviceID kernel.UUID) (int64, error)
}
