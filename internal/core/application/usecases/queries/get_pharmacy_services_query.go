package queries

import (
	"errors"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/guard"
)

var ErrGetPharmacyServicesQueryIsNotConstructed = errors.New(
	"GetPharmacyServicesQuery must be created via NewGetPharmacyServicesQuery constructor",
)

// GetPharmacyServicesQuery retrieves one pharmacy's available service
// offerings.
type GetPharmacyServicesQuery struct {
	pharmacyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPharmacyServicesQuery creates a pharmacy-service listing query.
func NewGetPharmacyServicesQuery(pharmacyID kernel.UUID) (GetPharmacyServicesQuery, error) {
	if err := pharmacyID.Validate(); err != nil {
		return GetPharmacyServicesQuery{}, err
	}

	return GetPharmacyServicesQuery{
		pharmacyID: pharmacyID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPharmacyServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmacyServicesQueryIsNotConstructed)
}

// PharmacyID returns the pharmacy whose services are requested.
func (q GetPharmacyServicesQuery) PharmacyID() kernel.UUID {
	return q.pharmacyID
}

// PharmacyServiceResponse is one service offering of a pharmacy: the catalog
// service plus the pharmacy-specific price.
type PharmacyServiceResponse struct {
	ServiceID   kernel.UUID
	Name        string
	Description string
	Price       int64
}
