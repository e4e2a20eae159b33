package queries

import (
	"context"

	"pharmadelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPharmacyServicesQueryHandler retrieves one pharmacy's available service
// offerings, ordered by service name.
type GetPharmacyServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetPharmacyServicesQueryHandler creates a handler for pharmacy-service
// listings.
func NewGetPharmacyServicesQueryHandler(db *gorm.DB) GetPharmacyServicesQueryHandler {
	return GetPharmacyServicesQueryHandler{db: db}
}

// Handle executes the query. Only offerings marked available are returned.
func (h GetPharmacyServicesQueryHandler) Handle(
	ctx context.Context,
	query GetPharmacyServicesQuery,
) ([]PharmacyServiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.description,
			ps.price
		FROM pharmacy_services ps
		JOIN services s ON s.id = ps.service_id
		WHERE ps.pharmacy_id = ?
		  AND ps.is_available
		ORDER BY s.name
	`, query.PharmacyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]PharmacyServiceResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var service PharmacyServiceResponse

		err = rows.Scan(&id, &service.Name, &service.Description, &service.Price)
		if err != nil {
			return nil, err
		}
		if service.ServiceID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}
